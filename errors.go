package suffixtrie

import "errors"

// ErrEmptyRuleset is returned by Compile when a corpus yields zero usable
// rules, either because it was empty or because every line was malformed.
// A failed compile returns a nil *Matcher alongside the error; PublicSuffix,
// BaseDomain and HasValidTLD called on that nil Matcher return the
// empty/false zero value.
var ErrEmptyRuleset = errors.New("suffixtrie: ruleset contains no usable rules")
