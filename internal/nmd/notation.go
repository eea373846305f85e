package nmd

import "regexp"

// The protein-notation pre-filter. Annotation only makes sense for
// variants whose notation denotes a defined (pre)mature stop: nonsense
// changes like p.Arg100Ter and frameshifts with a resolved downstream
// stop like p.Val26GlyfsTer28. Stop-retaining synonymous changes
// (p.Ter811=) and frameshifts whose downstream stop is unresolved
// (p.Ter257GlufsTer?) are declined.
var (
	reDefinedStop    = regexp.MustCompile(`Ter`)
	reStopRetained   = regexp.MustCompile(`^p\.Ter\d+=$`)
	reUnresolvedStop = regexp.MustCompile(`Ter\?$`)
)

// ShouldAnnotate reports whether a protein-change notation passes the
// pre-filter. A false return is a declined annotation, not an error.
func ShouldAnnotate(notation string) bool {
	if !reDefinedStop.MatchString(notation) {
		return false
	}
	if reStopRetained.MatchString(notation) {
		return false
	}
	if reUnresolvedStop.MatchString(notation) {
		return false
	}
	return true
}
