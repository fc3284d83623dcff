package helpmd

// PullResult reports what Pull wrote to the workspace.
type PullResult struct {
	Written []string // Paths of files written, in write order
}

// PushResult reports what Push did per file.
type PushResult struct {
	Created []string // Files that created a new remote article
	Updated []string // Files that updated an existing article
	Skipped []string // Files left alone, e.g. non-default locales
}
