// Package helpmd converts help-center articles between the constrained
// HTML dialect used by Intercom and an editable Markdown dialect, and
// synchronizes article files with a help-center workspace.
//
// # Quick Start
//
// Convert article HTML to Markdown and back:
//
//	md := helpmd.Decode(articleHTML)
//	// ... edit md locally ...
//	html := helpmd.Encode(md, articleHTML)
//
// Passing the original HTML to Encode restores the ephemeral signed URL
// parameters that Decode strips from asset links. For a brand-new article
// there is no original; pass the empty string.
//
// # The Markdown Dialect
//
// The dialect is standard Markdown plus three extensions:
//
//   - Alignment directives: an HTML comment on its own line, e.g.
//     "<!-- align:center -->", applies to the following block.
//   - Callouts: fenced blocks tagged callout-<color>, where color is one
//     of gray, blue, green, red, or yellow.
//   - Passthrough: any HTML construct the codec does not recognize is
//     kept verbatim, so unknown blocks survive a round trip unchanged.
//
// # Synchronization
//
// Syncer pulls published articles into local Markdown files with YAML
// front matter, and pushes edited files back:
//
//	sync, err := helpmd.NewSyncer(token, helpmd.WithWorkspace("./articles"))
//	// ...
//	err = sync.Pull(ctx)
//	err = sync.Push(ctx)
//
// Files with an "id" field in their front matter update the remote
// article; files without one create a new article and are rewritten with
// the assigned ID.
package helpmd
