package helpmd

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/helpmd/go-helpmd/internal/document"
	"github.com/helpmd/go-helpmd/internal/intercom"
	"github.com/helpmd/go-helpmd/internal/scan"
)

// Syncer moves articles between a local workspace of Markdown files and
// the remote help center. Construct with NewSyncer.
type Syncer struct {
	client     *intercom.Client
	workspace  string
	locale     string
	logger     *logrus.Logger
	baseURL    string
	perPage    int
	httpClient *http.Client
}

// SyncOption customizes a Syncer.
type SyncOption func(*Syncer)

// WithWorkspace sets the local article directory. Default is the current
// directory.
func WithWorkspace(dir string) SyncOption {
	return func(s *Syncer) { s.workspace = dir }
}

// WithLocale sets the default locale assumed for files without one.
func WithLocale(locale string) SyncOption {
	return func(s *Syncer) { s.locale = locale }
}

// WithLogger overrides the default logger.
func WithLogger(l *logrus.Logger) SyncOption {
	return func(s *Syncer) { s.logger = l }
}

// WithBaseURL overrides the API endpoint, e.g. for the EU region or tests.
func WithBaseURL(u string) SyncOption {
	return func(s *Syncer) { s.baseURL = u }
}

// WithPerPage sets the page size used when listing remote articles.
func WithPerPage(n int) SyncOption {
	return func(s *Syncer) { s.perPage = n }
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) SyncOption {
	return func(s *Syncer) { s.httpClient = hc }
}

// NewSyncer creates a Syncer authenticated with the given access token.
func NewSyncer(token string, opts ...SyncOption) (*Syncer, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	s := &Syncer{
		workspace: ".",
		locale:    "en",
		logger:    logrus.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workspace == "" {
		return nil, ErrMissingWorkspace
	}

	copts := []intercom.Option{intercom.WithLogger(s.logger)}
	if s.baseURL != "" {
		copts = append(copts, intercom.WithBaseURL(s.baseURL))
	}
	if s.perPage > 0 {
		copts = append(copts, intercom.WithPerPage(s.perPage))
	}
	if s.httpClient != nil {
		copts = append(copts, intercom.WithHTTPClient(s.httpClient))
	}

	client, err := intercom.NewClient(token, copts...)
	if err != nil {
		return nil, err
	}
	s.client = client
	return s, nil
}

// Pull fetches every remote article and writes it into the workspace as
// Markdown with YAML front matter. The default-locale content goes to
// <id>.md; each translation goes to <id>.<locale>.md. Existing files are
// overwritten.
func (s *Syncer) Pull(ctx context.Context) (*PullResult, error) {
	articles, err := s.client.ListArticles(ctx)
	if err != nil {
		return nil, err
	}

	result := &PullResult{}
	for _, a := range articles {
		path := filepath.Join(s.workspace, a.ID+".md")
		if err := s.writeArticle(path, a.ID, a.Title, a.DefaultLocale, a.State, a.ParentID, a.Body); err != nil {
			return result, err
		}
		result.Written = append(result.Written, path)

		for locale, tr := range a.TranslatedContent {
			if locale == a.DefaultLocale || tr.Body == "" {
				continue
			}
			trPath := filepath.Join(s.workspace, a.ID+"."+locale+".md")
			if err := s.writeArticle(trPath, a.ID, tr.Title, locale, tr.State, a.ParentID, tr.Body); err != nil {
				return result, err
			}
			result.Written = append(result.Written, trPath)
		}
	}

	s.logger.WithField("files", len(result.Written)).Info("pull complete")
	return result, nil
}

func (s *Syncer) writeArticle(path, id, title, locale, state, parentID, body string) error {
	doc := &document.Document{
		Path: path,
		Meta: document.Meta{
			ID:       id,
			Title:    title,
			Locale:   locale,
			State:    state,
			ParentID: parentID,
		},
		Body: Decode(body),
	}
	if doc.Body == "" {
		// An article with an empty remote body still gets a file, so it
		// can be edited and pushed.
		doc.Body = "\n"
	}
	if err := doc.Save(); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"id": id, "path": path}).Debug("wrote article")
	return nil
}

// Push encodes every workspace file and sends it to the help center.
// Files with an ID in their front matter update the existing article; the
// original remote HTML is fetched first so unchanged asset URLs keep
// their signatures. Files without an ID create a new article and are
// rewritten with the assigned ID. Files whose locale differs from the
// syncer's default locale are skipped.
func (s *Syncer) Push(ctx context.Context) (*PushResult, error) {
	paths, err := scan.Discover(s.workspace)
	if err != nil {
		return nil, err
	}

	result := &PushResult{}
	for _, path := range paths {
		doc, err := document.Load(path)
		if err != nil {
			return result, err
		}
		if doc.Meta.Locale != "" && doc.Meta.Locale != s.locale {
			s.logger.WithFields(logrus.Fields{"path": path, "locale": doc.Meta.Locale}).
				Warn("skipping non-default locale")
			result.Skipped = append(result.Skipped, path)
			continue
		}
		if doc.Meta.Title == "" {
			return result, fmt.Errorf("%s: %w", path, ErrMissingTitle)
		}

		if doc.Meta.ID == "" {
			if err := s.pushNew(ctx, doc); err != nil {
				return result, err
			}
			result.Created = append(result.Created, path)
		} else {
			if err := s.pushExisting(ctx, doc); err != nil {
				return result, err
			}
			result.Updated = append(result.Updated, path)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"created": len(result.Created),
		"updated": len(result.Updated),
		"skipped": len(result.Skipped),
	}).Info("push complete")
	return result, nil
}

func (s *Syncer) pushNew(ctx context.Context, doc *document.Document) error {
	created, err := s.client.CreateArticle(ctx, intercom.ArticleRequest{
		Title:    doc.Meta.Title,
		Body:     Encode(doc.Body, ""),
		State:    doc.Meta.State,
		ParentID: doc.Meta.ParentID,
	})
	if err != nil {
		return err
	}

	// Record the assigned ID so the next push updates instead of
	// creating a duplicate.
	doc.Meta.ID = created.ID
	if err := doc.Save(); err != nil {
		return fmt.Errorf("recording assigned id %s: %w", created.ID, err)
	}
	s.logger.WithFields(logrus.Fields{"id": created.ID, "path": doc.Path}).Info("created article")
	return nil
}

func (s *Syncer) pushExisting(ctx context.Context, doc *document.Document) error {
	original, err := s.client.GetArticle(ctx, doc.Meta.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", doc.Path, err)
	}

	_, err = s.client.UpdateArticle(ctx, doc.Meta.ID, intercom.ArticleRequest{
		Title:    doc.Meta.Title,
		Body:     Encode(doc.Body, original.Body),
		State:    doc.Meta.State,
		ParentID: doc.Meta.ParentID,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", doc.Path, err)
	}
	s.logger.WithFields(logrus.Fields{"id": doc.Meta.ID, "path": doc.Path}).Info("updated article")
	return nil
}
