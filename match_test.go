package suffixtrie

import (
	"strings"
	"testing"
)

// testCorpus exercises the matcher's main scenarios: plain TLDs, a
// two-position literal rule, a three-position literal rule, a bare-TLD
// rule merged with a wildcard+exception rule sharing the same TLD, a
// mid-pattern wildcard, and a trailing wildcard with no literal
// continuation.
const testCorpus = `
com
net

uk { co }

jp { kyoto } { ide }
jp { kobe } { * !city }

ck
ck { * !www }

us { ak }
us { ak } { k12 }
us { ca } { * } { ci }

bd { * }
`

func mustCompile(t *testing.T, corpus string) *Matcher {
	t.Helper()
	m, err := NewCompiler(nil).Compile(strings.NewReader(corpus))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return m
}

func TestPublicSuffixScenarios(t *testing.T) {
	m := mustCompile(t, testCorpus)

	cases := []struct {
		host string
		want string
	}{
		{"www.foo.com", "foo.com"},
		{"foo.com", "foo.com"},
		{"www.whitbread.co.uk", "whitbread.co.uk"},
		{"www.foo.zz", ""},
		{"com.bd", ""},
		{"www.ck", "www.ck"},
		{"b.ide.kyoto.jp", "b.ide.kyoto.jp"},
		{"city.kobe.jp", "city.kobe.jp"},
		{"127.0.0.1", ""},
		{"test.ak.us", "test.ak.us"},
		{"test.k12.ak.us", "test.k12.ak.us"},
		{"sunset.ci.sunnyvale.ca.us", "ci.sunnyvale.ca.us"},
		{"x.y.bd", "y.bd"},
		{"y.bd", ""},
		{"", ""},
		{"foo.com.", ""},
	}
	for _, tc := range cases {
		if got := m.PublicSuffix(tc.host); got != tc.want {
			t.Errorf("PublicSuffix(%q) = %q, want %q", tc.host, got, tc.want)
		}
	}
}

func TestBaseDomainPermissiveFallback(t *testing.T) {
	m := mustCompile(t, testCorpus)

	cases := []struct {
		host string
		want string
	}{
		{"www.foo.zz", "foo.zz"},
		{"com.bd", "com.bd"},
		{"b.ide.kyoto.jp", "b.ide.kyoto.jp"},
		{"city.kobe.jp", "city.kobe.jp"},
		{"127.0.0.1", "127.0.0.1"},
		{"999.999.999.999", "999.999.999.999"},
		{"", ""},
		{"foo.com.", ""},
	}
	for _, tc := range cases {
		if got := m.BaseDomain(tc.host); got != tc.want {
			t.Errorf("BaseDomain(%q) = %q, want %q", tc.host, got, tc.want)
		}
	}
}

func TestHasValidTLD(t *testing.T) {
	m := mustCompile(t, testCorpus)

	cases := []struct {
		host string
		want bool
	}{
		{"www.foo.com", true},
		{"foo.zz", false},
		{"b.ide.kyoto.jp", true},
		{"", false},
	}
	for _, tc := range cases {
		if got := m.HasValidTLD(tc.host); got != tc.want {
			t.Errorf("HasValidTLD(%q) = %v, want %v", tc.host, got, tc.want)
		}
	}
}

func TestStrictRejectsMarkerBytesAdjacentToSuffix(t *testing.T) {
	m := mustCompile(t, testCorpus)

	// When the gate label the matcher requires is itself just a reserved
	// marker byte, it cannot be a real registrable label, so strict mode
	// rejects the whole match rather than appending it.
	if got := m.PublicSuffix("*.com"); got != "" {
		t.Errorf("PublicSuffix(%q) = %q, want empty (leading '*' gate label must be rejected)", "*.com", got)
	}
	if got := m.PublicSuffix("!.com"); got != "" {
		t.Errorf("PublicSuffix(%q) = %q, want empty (leading '!' gate label must be rejected)", "!.com", got)
	}
}

func TestCaseInsensitiveMatching(t *testing.T) {
	m := mustCompile(t, testCorpus)

	if got := m.PublicSuffix("WWW.FOO.COM"); got != "foo.com" {
		t.Errorf("PublicSuffix(%q) = %q, want %q", "WWW.FOO.COM", got, "foo.com")
	}
}

func TestCompileIsConcurrencySafeToRead(t *testing.T) {
	m := mustCompile(t, testCorpus)

	done := make(chan string, 32)
	for i := 0; i < 32; i++ {
		go func() {
			done <- m.PublicSuffix("www.foo.com")
		}()
	}
	for i := 0; i < 32; i++ {
		if got := <-done; got != "foo.com" {
			t.Errorf("concurrent PublicSuffix = %q, want %q", got, "foo.com")
		}
	}
}
