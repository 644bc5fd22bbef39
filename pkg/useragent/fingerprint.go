package useragent

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"lukechampine.com/blake3"
)

// fingerprint derives a stable device identifier from the classified fields
// plus structural characteristics of the raw user agent string. The feature
// parts are sorted before hashing so the result does not depend on field
// evaluation order, and the digest is hashed a second time so the feature
// vector cannot be reconstructed from the output. Returns nil when no raw
// user agent is available.
func (ua UserAgent) fingerprint() *string {
	if ua.Raw == nil {
		return nil
	}
	raw := *ua.Raw

	var parts []string

	if ua.Product.Name != nil {
		parts = append(parts, "b:"+*ua.Product.Name)
		if ua.Product.Major != nil {
			parts = append(parts, "bv:"+*ua.Product.Major)
			if ua.Product.Minor != nil {
				parts = append(parts, fmt.Sprintf("bvm:%s.%s", *ua.Product.Major, *ua.Product.Minor))
			}
		}
	}

	if ua.OS.Name != nil {
		parts = append(parts, "o:"+*ua.OS.Name)
		if ua.OS.Major != nil {
			parts = append(parts, "ov:"+*ua.OS.Major)
			if ua.OS.Minor != nil {
				parts = append(parts, fmt.Sprintf("ovm:%s.%s", *ua.OS.Major, *ua.OS.Minor))
			}
		}
	}

	if ua.Device.Name != nil {
		parts = append(parts, "d:"+*ua.Device.Name)
		if ua.Device.Brand != nil {
			parts = append(parts, "db:"+*ua.Device.Brand)
		}
		if ua.Device.Model != nil {
			parts = append(parts, "dm:"+*ua.Device.Model)
		}
	}

	if ua.CPU.Architecture != nil {
		parts = append(parts, "c:"+*ua.CPU.Architecture)
	}

	if ua.Engine.Name != nil {
		parts = append(parts, "e:"+*ua.Engine.Name)
		if ua.Engine.Major != nil {
			parts = append(parts, "ev:"+*ua.Engine.Major)
		}
	}

	// Structural characteristics of the raw string; these stay stable across
	// minor version bumps within the same browser family.
	digits, symbols := 0, 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits++
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			symbols++
		}
	}
	parts = append(parts,
		fmt.Sprintf("l:%d", len(raw)),
		fmt.Sprintf("d:%d", digits),
		fmt.Sprintf("s:%d", symbols),
		fmt.Sprintf("w:%d", len(strings.Fields(raw))),
	)

	// Capability keywords.
	if strings.Contains(raw, "Mobile") {
		parts = append(parts, "fm:1")
	}
	if strings.Contains(raw, "AppleWebKit") {
		parts = append(parts, "faw:1")
	}
	if strings.Contains(raw, "Gecko") {
		parts = append(parts, "fg:1")
	}
	if strings.Contains(raw, "Chrome") {
		parts = append(parts, "fc:1")
	}
	if strings.Contains(raw, "Safari") && !strings.Contains(raw, "Chrome") {
		parts = append(parts, "fs:1")
	}
	if strings.Contains(raw, "Firefox") {
		parts = append(parts, "ff:1")
	}
	if strings.Contains(raw, "Edge") || strings.Contains(raw, "Edg/") {
		parts = append(parts, "fe:1")
	}
	if strings.Contains(raw, "MSIE") || strings.Contains(raw, "Trident") {
		parts = append(parts, "fi:1")
	}

	switch {
	case strings.Contains(raw, "Win"):
		parts = append(parts, "fow:1")
	case strings.Contains(raw, "Mac"):
		parts = append(parts, "fom:1")
	case strings.Contains(raw, "Linux"):
		parts = append(parts, "fol:1")
	case strings.Contains(raw, "Android"):
		parts = append(parts, "foa:1")
	case strings.Contains(raw, "iOS"), strings.Contains(raw, "iPhone"), strings.Contains(raw, "iPad"):
		parts = append(parts, "foi:1")
	}

	// Only the network portion of the address participates, so the
	// fingerprint survives DHCP churn within the same network.
	if ua.IP != nil {
		ip := *ua.IP
		if strings.Contains(ip, ".") {
			if octets := strings.Split(ip, "."); len(octets) >= 2 {
				parts = append(parts, fmt.Sprintf("ip4:%s.%s", octets[0], octets[1]))
			}
		} else if strings.Contains(ip, ":") {
			if segments := strings.Split(ip, ":"); len(segments) >= 4 {
				parts = append(parts, "ip6:"+strings.Join(segments[:4], ":"))
			}
		}
	}

	sort.Strings(parts)
	primary := hexDigest(strings.Join(parts, "&%&"))
	secondary := hexDigest(primary)
	return &secondary
}

// hash digests the normalized representation; it is coarser than the
// fingerprint and suitable as a family identifier for grouping sessions.
func (ua UserAgent) hash() *string {
	normalized := ua.NormalizedString()
	if normalized == nil {
		return nil
	}
	digest := hexDigest(*normalized)
	return &digest
}

// NormalizedString renders the classification as pipe-separated sections of
// dot-joined non-empty components, always ending with the raw user agent.
// Returns nil when no raw user agent is available.
func (ua UserAgent) NormalizedString() *string {
	if ua.Raw == nil {
		return nil
	}

	var sections []string
	if s := joinPresent(ua.Product.Name, ua.Product.Major, ua.Product.Minor, ua.Product.Patch); s != "" {
		sections = append(sections, s)
	}
	if s := joinPresent(ua.OS.Name, ua.OS.Major, ua.OS.Minor, ua.OS.Patch, ua.OS.PatchMinor); s != "" {
		sections = append(sections, s)
	}
	if s := joinPresent(ua.Device.Name, ua.Device.Brand, ua.Device.Model); s != "" {
		sections = append(sections, s)
	}
	sections = append(sections, *ua.Raw)

	normalized := strings.Join(sections, "|")
	return &normalized
}

func joinPresent(fields ...*string) string {
	var present []string
	for _, f := range fields {
		if f != nil {
			present = append(present, *f)
		}
	}
	return strings.Join(present, ".")
}

func hexDigest(s string) string {
	sum := blake3.Sum256([]byte(s))
	return fmt.Sprintf("%x", sum)
}
