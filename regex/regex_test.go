package regex

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileExprsPostfix(t *testing.T) {
	cases := []struct {
		pattern string
		want    []Expr
	}{
		{"a", []Expr{{Kind: ExprLiteral, Lit: 'a'}}},
		{"ab", []Expr{{Kind: ExprLiteral, Lit: 'a'}, {Kind: ExprLiteral, Lit: 'b'}}},
		{"a.b", []Expr{{Kind: ExprLiteral, Lit: 'a'}, {Kind: ExprLiteral, Lit: 'b'}, {Kind: ExprConcat}}},
		{"a|b", []Expr{{Kind: ExprLiteral, Lit: 'a'}, {Kind: ExprLiteral, Lit: 'b'}, {Kind: ExprAlt}}},
		{"a*", []Expr{{Kind: ExprLiteral, Lit: 'a'}, {Kind: ExprStar}}},
		{"a?", []Expr{{Kind: ExprLiteral, Lit: 'a'}, {Kind: ExprOpt}}},
		{"a+", []Expr{{Kind: ExprLiteral, Lit: 'a'}, {Kind: ExprPlus}}},
		{"[a-z]", []Expr{{Kind: ExprCharRange, Lo: 'a', Hi: 'z'}}},
		{"\\(", []Expr{{Kind: ExprLiteral, Lit: '('}}},
	}
	for _, c := range cases {
		got, err := compileExprs(c.pattern)
		require.NoError(t, err, c.pattern)
		assert.Equal(t, c.want, got, c.pattern)
	}
}

func TestCompileExprsPrecedenceAndParens(t *testing.T) {
	got, err := compileExprs("(a|b).c")
	require.NoError(t, err)
	want := []Expr{
		{Kind: ExprLiteral, Lit: 'a'},
		{Kind: ExprLiteral, Lit: 'b'},
		{Kind: ExprAlt},
		{Kind: ExprLiteral, Lit: 'c'},
		{Kind: ExprConcat},
	}
	assert.Equal(t, want, got)
}

func TestCompileExprsErrors(t *testing.T) {
	cases := []string{
		"[a-z",  // unclosed '['
		"a)",    // unmatched ')'
		"(a",    // stray '(' (left on stack)
		"[]",    // invalid range
		"[-z]",  // invalid range: empty lhs
		"[a-]",  // invalid range: empty rhs
	}
	for _, pattern := range cases {
		_, err := compileExprs(pattern)
		assert.Error(t, err, pattern)
	}
}

func TestMatcherBasics(t *testing.T) {
	m, err := Compile("a")
	require.NoError(t, err)
	assert.True(t, m.Matches("a"))
	assert.False(t, m.Matches("b"))
	assert.False(t, m.Matches(""))
	assert.False(t, m.Matches("aa"))
}

func TestMatcherConcat(t *testing.T) {
	m, err := Compile("a.b")
	require.NoError(t, err)
	assert.True(t, m.Matches("ab"))
	assert.False(t, m.Matches("a"))
	assert.False(t, m.Matches("abc"))
	assert.False(t, m.Matches(""))
}

func TestMatcherAlternation(t *testing.T) {
	m, err := Compile("(a|b)*")
	require.NoError(t, err)
	for _, s := range []string{"", "a", "b", "abab"} {
		assert.True(t, m.Matches(s), s)
	}
	assert.False(t, m.Matches("c"))
}

func TestMatcherCharRangePlus(t *testing.T) {
	m, err := Compile("[0-9]+")
	require.NoError(t, err)
	assert.True(t, m.Matches("123"))
	assert.False(t, m.Matches(""))
	assert.False(t, m.Matches("12a"))
}

func TestMatcherOptional(t *testing.T) {
	m, err := Compile("a?")
	require.NoError(t, err)
	assert.True(t, m.Matches(""))
	assert.True(t, m.Matches("a"))
	assert.False(t, m.Matches("aa"))
}

func TestMatcherNestedAlternationAndConcat(t *testing.T) {
	m, err := Compile("(a.b)|(c|d)")
	require.NoError(t, err)
	assert.True(t, m.Matches("ab"))
	assert.True(t, m.Matches("c"))
	assert.True(t, m.Matches("d"))
	assert.False(t, m.Matches("a"))
}

func TestNFAInvariants(t *testing.T) {
	patterns := []string{"a", "a.b", "a|b", "a*", "a+", "a?", "(a.b)|(c|d)", "[0-9]+"}
	for _, p := range patterns {
		m, err := Compile(p)
		require.NoError(t, err, p)
		nfa := m.NFA()
		accepts := 0
		for _, st := range nfa.States {
			if st.Kind == StateAccept {
				accepts++
			}
		}
		assert.Equal(t, 1, accepts, "pattern %q must have exactly one accept state", p)
		for i := range nfa.States {
			assert.NotPanics(t, func() { _ = epsilonClosure(nfa, i, make([]bool, len(nfa.States))) })
		}
	}
}

func TestMatchesIsDeterministic(t *testing.T) {
	m, err := Compile("(a|b)*.c")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.Equal(t, m.Matches("ababc"), m.Matches("ababc"))
	}
}

// TestMatcherConcurrentSharing exercises the guarantee that a *Matcher's
// epsilon-closure cache, once built, may be shared across goroutines
// without synchronization.
func TestMatcherConcurrentSharing(t *testing.T) {
	m, err := Compile("(a|b)*.c")
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, m.Matches("abababc"))
			assert.False(t, m.Matches("d"))
		}()
	}
	wg.Wait()
}

// ExampleCompile demonstrates the engine matching a flag-like string, the
// same shape the original command-line flag matcher used
// (`(-.-).([a-z]*).=.(...)`), kept here as documentation rather than wired
// into the production CLI flag parser (cobra/pflag fills that role).
func ExampleCompile() {
	m, err := Compile("(-.-).([a-z]*).=.(([a-z]|/|\\.|_)*)")
	if err != nil {
		panic(err)
	}
	_ = m.Matches("--src=path/to/file.txt")
	// Output:
}
