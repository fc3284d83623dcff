package intercom

import (
	"encoding/json"
	"fmt"
)

// Article is a help-center article as returned by the API. Numeric
// identifiers are normalized to strings because the API is inconsistent
// about emitting them as numbers or strings.
type Article struct {
	ID                string
	Title             string
	Description       string
	Body              string
	AuthorID          string
	State             string
	ParentID          string
	DefaultLocale     string
	URL               string
	TranslatedContent TranslationSet
}

// Translation is one localized version of an article.
type Translation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	AuthorID    ID     `json:"author_id"`
	State       string `json:"state"`
	URL         string `json:"url"`
}

// TranslationSet maps locale codes to translations. The API nests the
// translations object alongside a "type" discriminator field, which is
// skipped during decoding.
type TranslationSet map[string]Translation

func (ts *TranslationSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(TranslationSet, len(raw))
	for locale, msg := range raw {
		if locale == "type" {
			continue
		}
		if string(msg) == "null" {
			continue
		}
		var tr Translation
		if err := json.Unmarshal(msg, &tr); err != nil {
			return fmt.Errorf("translation %q: %w", locale, err)
		}
		out[locale] = tr
	}
	*ts = out
	return nil
}

// ID decodes a JSON value that may be a number, a string, or null into a
// plain string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*id = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*id = ID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// articleWire is the raw JSON shape of an article.
type articleWire struct {
	ID                ID             `json:"id"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Body              string         `json:"body"`
	AuthorID          ID             `json:"author_id"`
	State             string         `json:"state"`
	ParentID          ID             `json:"parent_id"`
	DefaultLocale     string         `json:"default_locale"`
	URL               string         `json:"url"`
	TranslatedContent TranslationSet `json:"translated_content"`
}

func (a *Article) UnmarshalJSON(data []byte) error {
	var w articleWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = Article{
		ID:                string(w.ID),
		Title:             w.Title,
		Description:       w.Description,
		Body:              w.Body,
		AuthorID:          string(w.AuthorID),
		State:             w.State,
		ParentID:          string(w.ParentID),
		DefaultLocale:     w.DefaultLocale,
		URL:               w.URL,
		TranslatedContent: w.TranslatedContent,
	}
	return nil
}

// ArticleRequest is the payload for creating or updating an article.
type ArticleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Body        string `json:"body"`
	AuthorID    string `json:"author_id,omitempty"`
	State       string `json:"state,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	ParentType  string `json:"parent_type,omitempty"`
}
