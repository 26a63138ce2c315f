package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/docstyle/pkg/check"
	"github.com/yaklabco/docstyle/pkg/config"
)

const familyContent = "content"

var (
	kbRefRe   = regexp.MustCompile(`(?i)\bKB-?\d+\b`)
	versionRe = regexp.MustCompile(`\b\d+\.\d+(?:\.\d+)*\b`)
	ipRe      = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
	emailRe   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	digitsRe  = regexp.MustCompile(`\d+`)
)

// lineHasLink reports whether the line already contains link markup.
func lineHasLink(text, lower string) bool {
	return strings.Contains(lower, "<a") || strings.Contains(lower, "href") ||
		strings.Contains(text, "](")
}

// KBReferenceFormatRule checks that KB references use the canonical
// KB-#### form with enough digits.
type KBReferenceFormatRule struct {
	check.BaseRule
}

// NewKBReferenceFormatRule creates a new KB reference format rule.
func NewKBReferenceFormatRule() *KBReferenceFormatRule {
	return &KBReferenceFormatRule{
		BaseRule: check.NewBaseRule(
			"kb_reference_format",
			"kb-reference-format",
			"KB references use the KB-#### format",
			familyContent,
			config.SeverityInfo,
			[]string{"content", "kb"},
		),
	}
}

// Apply reports KB references that are missing the hyphenated uppercase
// prefix or fall below the configured digit minimum.
func (r *KBReferenceFormatRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	minDigits := ctx.Config.Content.KBMinDigits
	if minDigits <= 0 {
		minDigits = 4
	}
	minDigits = ctx.OptionInt("min_digits", minDigits)

	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, text, _ string) {
		for _, ref := range kbRefRe.FindAllString(text, -1) {
			digits := digitsRe.FindString(ref)
			if strings.HasPrefix(ref, "KB-") && len(digits) >= minDigits {
				continue
			}
			findings = append(findings, check.NewFinding(r.ID(), line,
				fmt.Sprintf("KB reference format issue: %q", ref)).
				WithSuggestion(fmt.Sprintf("Use the form KB-%s (e.g., KB-5013)", strings.Repeat("#", minDigits))).
				Build())
		}
	})
	return findings, nil
}

// KBReferenceLinkRule checks that KB references are linked.
type KBReferenceLinkRule struct {
	check.BaseRule
}

// NewKBReferenceLinkRule creates a new KB reference link rule.
func NewKBReferenceLinkRule() *KBReferenceLinkRule {
	return &KBReferenceLinkRule{
		BaseRule: check.NewBaseRule(
			"kb_reference_link",
			"kb-reference-link",
			"KB references link to the article",
			familyContent,
			config.SeverityInfo,
			[]string{"content", "kb", "links"},
		),
	}
}

// Apply reports KB references on lines without link markup.
func (r *KBReferenceLinkRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, text, lower string) {
		refs := kbRefRe.FindAllString(text, -1)
		if len(refs) == 0 || lineHasLink(text, lower) {
			return
		}
		for _, ref := range refs {
			findings = append(findings, check.NewFinding(r.ID(), line,
				fmt.Sprintf("KB reference %q should be linked", ref)).
				WithSuggestion("Add a link to the KB article on the support portal").
				Build())
		}
	})
	return findings, nil
}

// VersionFormatRule checks that version numbers use the full X.Y.Z form.
type VersionFormatRule struct {
	check.BaseRule
}

// NewVersionFormatRule creates a new version format rule.
func NewVersionFormatRule() *VersionFormatRule {
	return &VersionFormatRule{
		BaseRule: check.NewBaseRule(
			"version_format",
			"version-format",
			"Version numbers use the three-part X.Y.Z form",
			familyContent,
			config.SeverityInfo,
			[]string{"content", "versions"},
		),
	}
}

// Apply reports two-part version numbers.
func (r *VersionFormatRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	if !ctx.Config.Content.RequireFullVersions {
		return nil, nil
	}

	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, text, _ string) {
		for _, v := range versionRe.FindAllString(text, -1) {
			if strings.Count(v, ".") != 1 {
				continue
			}
			findings = append(findings, check.NewFinding(r.ID(), line,
				fmt.Sprintf("Version number %q might benefit from the full X.Y.Z format", v)).
				WithSuggestion(fmt.Sprintf("Consider %s.0 instead of %s", v, v)).
				Build())
		}
	})
	return findings, nil
}

// PIIIPAddressRule flags IP addresses that are not masked.
type PIIIPAddressRule struct {
	check.BaseRule
}

// NewPIIIPAddressRule creates a new IP address PII rule.
func NewPIIIPAddressRule() *PIIIPAddressRule {
	return &PIIIPAddressRule{
		BaseRule: check.NewBaseRule(
			"pii_ip_address",
			"pii-ip-address",
			"Documents must not contain real IP addresses",
			familyContent,
			config.SeverityError,
			[]string{"content", "pii"},
		),
	}
}

// Apply reports unmasked IP addresses on prose lines. Code regions are
// exempt: command transcripts use masked placeholders instead.
func (r *PIIIPAddressRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	marker := ctx.Config.Content.IPMaskMarker
	if marker == "" {
		marker = "x.x.x."
	}

	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, text, _ string) {
		if strings.Contains(text, marker) {
			return
		}
		if ipRe.MatchString(text) {
			findings = append(findings, check.NewFinding(r.ID(), line,
				"Possible real IP address found").
				WithSuggestion(fmt.Sprintf("Replace with a masked form like %q", marker+"123")).
				Build())
		}
	})
	return findings, nil
}

// PIIEmailRule flags email addresses outside the allowed domains.
type PIIEmailRule struct {
	check.BaseRule
}

// NewPIIEmailRule creates a new email PII rule.
func NewPIIEmailRule() *PIIEmailRule {
	return &PIIEmailRule{
		BaseRule: check.NewBaseRule(
			"pii_email",
			"pii-email",
			"Documents must not contain personal email addresses",
			familyContent,
			config.SeverityError,
			[]string{"content", "pii"},
		),
	}
}

// Apply reports email addresses whose domain is not an allowed example
// domain.
func (r *PIIEmailRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	allowed := ctx.Config.Content.AllowedEmailDomains

	var findings []check.Finding
	eachProseLine(ctx.Doc, func(line int, text, _ string) {
		for _, addr := range emailRe.FindAllString(text, -1) {
			if emailAllowed(addr, allowed) {
				continue
			}
			findings = append(findings, check.NewFinding(r.ID(), line,
				"Possible email address found").
				WithSuggestion("Remove personal email addresses or use a generic example address").
				Build())
		}
	})
	return findings, nil
}

func emailAllowed(addr string, allowed []string) bool {
	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(addr[at+1:])
	for _, d := range allowed {
		if domain == strings.ToLower(d) {
			return true
		}
	}
	return false
}

// ImageAltTextRule checks that images carry alt text.
type ImageAltTextRule struct {
	check.BaseRule
}

// NewImageAltTextRule creates a new image alt text rule.
func NewImageAltTextRule() *ImageAltTextRule {
	return &ImageAltTextRule{
		BaseRule: check.NewBaseRule(
			"image_alt_text",
			"image-alt-text",
			"Images have descriptive alt text",
			familyContent,
			config.SeverityWarning,
			[]string{"content", "accessibility"},
		),
	}
}

// Apply reports a document-level finding when parsed markup contains
// images without alt text. Node-level positions are not available, so the
// finding anchors to line 1.
func (r *ImageAltTextRule) Apply(ctx *check.RuleContext) ([]check.Finding, error) {
	missing := ctx.Doc.ImagesMissingAlt
	if missing == 0 {
		return nil, nil
	}
	noun := "image is"
	if missing > 1 {
		noun = "images are"
	}
	return []check.Finding{
		check.NewFinding(r.ID(), 1,
			fmt.Sprintf("%d %s missing alt text", missing, noun)).
			WithSuggestion("Add descriptive alt text to every image for screen reader accessibility").
			Build(),
	}, nil
}
