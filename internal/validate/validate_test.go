package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Slug        string `json:"slug" validate:"required,slug"`
	ContentName string `json:"contentName" validate:"required,mdfile"`
	Link        string `json:"link" validate:"omitempty,url"`
	Title       string `json:"title" validate:"min=4"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(sample{Slug: "ep-1", ContentName: "ep_1.md", Title: "Hello"})
	require.Nil(t, errs)
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	errs := Struct(sample{Slug: "Bad Slug", ContentName: "notes.txt", Link: "nope", Title: "abc"})

	require.Equal(t, []string{"slug must be lowercase alphanumeric or hyphens"}, errs["slug"])
	require.Equal(t, []string{"contentName must be a valid MD filename"}, errs["contentName"])
	require.Equal(t, []string{"link must be a valid URL"}, errs["link"])
	require.Equal(t, []string{"title must be at least 4 characters"}, errs["title"])
}

func TestFieldErrorsMerge(t *testing.T) {
	fe := FieldErrors{}
	fe.Add("a", "one")
	fe.Merge(FieldErrors{"a": {"two"}, "b": {"three"}})

	require.Equal(t, []string{"one", "two"}, fe["a"])
	require.Equal(t, []string{"three"}, fe["b"])
}
