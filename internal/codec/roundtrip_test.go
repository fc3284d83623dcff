package codec

import "testing"

// TestConstructRoundTrip decodes a minimal HTML instance of each construct
// and encodes it back, expecting the original HTML. The codec is exact for
// the whole construct set, so equivalence here is byte equality.
func TestConstructRoundTrip(t *testing.T) {
	t.Parallel()

	constructs := []struct {
		name string
		html string
	}{
		{"heading 1", `<h1>Title</h1>`},
		{"heading 2", `<h2>Title</h2>`},
		{"heading 3", `<h3>Title</h3>`},
		{"heading 4", `<h4>Title</h4>`},
		{"aligned heading", `<h2 class="intercom-align-center">Title</h2>`},
		{"paragraph", `<p class="no-margin">Some text</p>`},
		{"aligned paragraph", `<p class="intercom-align-right">Some text</p>`},
		{"image", `<div class="intercom-container"><img src="https://downloads.intercomcdn.com/i/o/9.png"></div>`},
		{"aligned image", `<div class="intercom-container intercom-align-center"><img src="https://downloads.intercomcdn.com/i/o/9.png"></div>`},
		{"image with alt", `<div class="intercom-container"><img src="https://example.com/x.png" alt="X"></div>`},
		{"unordered list", `<ul><li><p class="no-margin">first</p></li><li><p class="no-margin">second</p></li></ul>`},
		{"ordered list", `<ol><li><p class="no-margin">one</p></li><li><p class="no-margin">two</p></li></ol>`},
		{"table", `<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>2</td></tr></table>`},
		{"code block", `<pre><code>a &lt; b &amp;&amp; c</code></pre>`},
		{"link", `<p class="no-margin"><a href="https://example.com" target="_blank" class="intercom-content-link">docs</a></p>`},
		{"bold", `<p class="no-margin"><b>x</b></p>`},
		{"italic", `<p class="no-margin"><i>x</i></p>`},
		{"bold italic", `<p class="no-margin"><b><i>x</i></b></p>`},
		{"inline code", `<p class="no-margin"><code>go build</code></p>`},
		{"horizontal rule", `<hr>`},
		{"soft line break", `<p class="no-margin">a<br>b</p>`},
	}

	for _, c := range constructs {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			md := Decode(c.html)
			got := Encode(md, "")
			if got != c.html {
				t.Errorf("round trip:\n  html: %q\n  md:   %q\n  got:  %q", c.html, md, got)
			}
		})
	}
}

// Callout round trips are exercised for every registered color.
func TestCalloutRoundTrip(t *testing.T) {
	t.Parallel()

	for _, color := range CalloutColors() {
		color := color
		t.Run(color, func(t *testing.T) {
			t.Parallel()

			style := StyleForColor(color)
			html := `<div class="intercom-interblocks-callout" style="background-color:` +
				style.Background + `; border-color:` + style.Border +
				`"><p class="no-margin">Heads up</p></div>`

			md := Decode(html)
			want := "```callout-" + color + "\nHeads up\n```"
			if md != want {
				t.Fatalf("Decode = %q, want %q", md, want)
			}
			if got := Encode(md, ""); got != html {
				t.Errorf("Encode = %q, want %q", got, html)
			}
		})
	}
}

// A short table row survives decode plus encode with empty cells and the
// column count of the widest row.
func TestTableShapeNormalizationRoundTrip(t *testing.T) {
	t.Parallel()

	html := `<table><tr><th>A</th><th>B</th></tr><tr><td>1</td></tr></table>`
	md := Decode(html)
	want := "| A | B |\n| --- | --- |\n| 1 |  |"
	if md != want {
		t.Fatalf("Decode = %q, want %q", md, want)
	}

	got := Encode(md, "")
	wantHTML := `<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td></td></tr></table>`
	if got != wantHTML {
		t.Errorf("Encode = %q, want %q", got, wantHTML)
	}
}

// Signed asset URLs survive decode plus encode when the original HTML is
// available as the signature source.
func TestSignedAssetRoundTrip(t *testing.T) {
	t.Parallel()

	html := `<div class="intercom-container"><img src="https://downloads.intercomcdn.com/i/o/123.png?expires=999&signature=abc&req=1"></div>`
	md := Decode(html)
	if md != "![](https://downloads.intercomcdn.com/i/o/123.png)" {
		t.Fatalf("Decode = %q", md)
	}
	if got := Encode(md, html); got != html {
		t.Errorf("Encode with original = %q, want %q", got, html)
	}
}

// A document mixing most constructs must survive a full round trip.
func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	html := `<h1>Guide</h1>` +
		`<p class="no-margin">Welcome to the <b>guide</b>.</p>` +
		`<div class="intercom-container"><img src="https://downloads.intercomcdn.com/i/o/1.png"></div>` +
		`<ul><li><p class="no-margin">first</p></li><li><p class="no-margin">second</p></li></ul>` +
		`<hr>` +
		`<pre><code>run --help</code></pre>` +
		`<p class="no-margin">Done</p>`

	md := Decode(html)
	if got := Encode(md, ""); got != html {
		t.Errorf("document round trip:\n  md:  %q\n  got: %q\n  want %q", md, got, html)
	}
}
