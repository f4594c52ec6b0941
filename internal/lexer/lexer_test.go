package lexer

import (
	"testing"

	"reef/internal/diag"
	"reef/internal/source"
	"reef/internal/token"
)

type wantToken struct {
	kind token.Kind
	text string
}

func lexText(t *testing.T, src string) ([]token.Token, *diag.Diagnostic, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rf", []byte(src))
	tokens, err := Lex(fs.Get(id).Content, id, 0, Options{})
	return tokens, err, fs
}

func checkTokens(t *testing.T, fs *source.FileSet, tokens []token.Token, want []wantToken) {
	t.Helper()
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind {
			t.Errorf("token %d: kind = %s, want %s", i, tokens[i].Kind, w.kind)
		}
		if got := string(fs.Contents(tokens[i].Span)); got != w.text {
			t.Errorf("token %d: text = %q, want %q", i, got, w.text)
		}
	}
}

func TestLexBasics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []wantToken
	}{
		{
			name: "words and separators",
			src:  "foo bar | baz; qux",
			want: []wantToken{
				{token.Item, "foo"},
				{token.Item, "bar"},
				{token.Pipe, "|"},
				{token.Item, "baz"},
				{token.Semicolon, ";"},
				{token.Item, "qux"},
			},
		},
		{
			name: "newlines are eol tokens",
			src:  "a\nb\r\nc",
			want: []wantToken{
				{token.Item, "a"},
				{token.Eol, "\n"},
				{token.Item, "b"},
				{token.Eol, "\r"},
				{token.Eol, "\n"},
				{token.Item, "c"},
			},
		},
		{
			name: "comment runs to end of line",
			src:  "a # rest | of ; line\nb",
			want: []wantToken{
				{token.Item, "a"},
				{token.Comment, "# rest | of ; line"},
				{token.Eol, "\n"},
				{token.Item, "b"},
			},
		},
		{
			name: "separators inside quotes do not split",
			src:  `say "a | b; c" 'x y'`,
			want: []wantToken{
				{token.Item, "say"},
				{token.Item, `"a | b; c"`},
				{token.Item, "'x y'"},
			},
		},
		{
			name: "separators inside brackets do not split",
			src:  "run [1; 2 | 3] { a b }",
			want: []wantToken{
				{token.Item, "run"},
				{token.Item, "[1; 2 | 3]"},
				{token.Item, "{ a b }"},
			},
		},
		{
			name: "nested brackets",
			src:  "f ([a b] {c;d})",
			want: []wantToken{
				{token.Item, "f"},
				{token.Item, "([a b] {c;d})"},
			},
		},
		{
			name: "tabs and runs of spaces skipped",
			src:  "a\t\t b",
			want: []wantToken{
				{token.Item, "a"},
				{token.Item, "b"},
			},
		},
		{
			name: "empty input",
			src:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, lexErr, fs := lexText(t, tt.src)
			if lexErr != nil {
				t.Fatalf("unexpected error: %v", lexErr)
			}
			checkTokens(t, fs, tokens, tt.want)
		})
	}
}

func TestLexSpansAreExact(t *testing.T) {
	tokens, lexErr, fs := lexText(t, "let x = 40")
	if lexErr != nil {
		t.Fatalf("unexpected error: %v", lexErr)
	}

	wantSpans := []source.Span{
		{Start: 0, End: 3},
		{Start: 4, End: 5},
		{Start: 6, End: 7},
		{Start: 8, End: 10},
	}
	if len(tokens) != len(wantSpans) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(wantSpans))
	}
	for i, want := range wantSpans {
		got := tokens[i].Span
		if got.Start != want.Start || got.End != want.End {
			t.Errorf("token %d span = %d-%d, want %d-%d", i, got.Start, got.End, want.Start, want.End)
		}
	}
	_ = fs
}

func TestLexSubRangeOffset(t *testing.T) {
	fs := source.NewFileSet()
	full := []byte("skip me; keep this")
	id := fs.AddVirtual("test.rf", full)

	// lex only "keep this", starting at byte 9
	tokens, lexErr := Lex(full[9:], id, 9, Options{})
	if lexErr != nil {
		t.Fatalf("unexpected error: %v", lexErr)
	}
	want := []wantToken{
		{token.Item, "keep"},
		{token.Item, "this"},
	}
	checkTokens(t, fs, tokens, want)
	if tokens[0].Span.Start != 9 {
		t.Fatalf("first span start = %d, want 9", tokens[0].Span.Start)
	}
}

func TestLexUnclosedQuote(t *testing.T) {
	bag := diag.NewBag(10)
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rf", []byte(`echo "never closed`))

	tokens, lexErr := Lex(fs.Get(id).Content, id, 0, Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	if lexErr == nil {
		t.Fatalf("expected an error")
	}
	if lexErr.Code != diag.LexUnclosedQuote {
		t.Fatalf("code = %v, want LexUnclosedQuote", lexErr.Code)
	}
	if !bag.HasErrors() {
		t.Fatalf("reporter did not receive the error")
	}

	// best-effort tokens include the malformed item
	want := []wantToken{
		{token.Item, "echo"},
		{token.Item, `"never closed`},
	}
	checkTokens(t, fs, tokens, want)
}

func TestLexUnclosedBracket(t *testing.T) {
	tokens, lexErr, fs := lexText(t, "go [1 2")
	if lexErr == nil {
		t.Fatalf("expected an error")
	}
	if lexErr.Code != diag.LexUnclosedDelimiter {
		t.Fatalf("code = %v, want LexUnclosedDelimiter", lexErr.Code)
	}
	want := []wantToken{
		{token.Item, "go"},
		{token.Item, "[1 2"},
	}
	checkTokens(t, fs, tokens, want)
}

func TestLexQuoteSpansSeparatorsUntilEOF(t *testing.T) {
	// the open quote swallows the rest of the input, brackets included
	tokens, lexErr, fs := lexText(t, "say 'a\n[b")
	if lexErr == nil {
		t.Fatalf("expected an error")
	}
	if lexErr.Code != diag.LexUnclosedQuote {
		t.Fatalf("code = %v, want LexUnclosedQuote", lexErr.Code)
	}
	want := []wantToken{
		{token.Item, "say"},
		{token.Item, "'a\n[b"},
	}
	checkTokens(t, fs, tokens, want)
}
