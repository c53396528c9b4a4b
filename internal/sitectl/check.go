package sitectl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"podcastsite/internal/content"
)

// CheckResult is the outcome of checking one local episode file.
type CheckResult struct {
	Path        string
	Frontmatter content.Frontmatter
	Rendered    content.Rendered
	Err         error
}

func (r CheckResult) OK() bool {
	return r.Err == nil
}

// CheckFiles parses and renders local episode files the same way a sync
// would, so authors can catch frontmatter problems before pushing.
func CheckFiles(renderer *content.Renderer, paths []string) []CheckResult {
	results := make([]CheckResult, 0, len(paths))

	for _, p := range paths {
		res := CheckResult{Path: p}

		raw, err := os.ReadFile(p)
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}

		fm, body, err := content.ParseDocument(string(raw))
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}
		res.Frontmatter = fm

		res.Rendered, res.Err = renderer.RenderBilingual(body)
		results = append(results, res)
	}

	return results
}

// WriteCheckReport prints one line per file and reports whether all passed.
func WriteCheckReport(w io.Writer, results []CheckResult) bool {
	ok := true
	for _, res := range results {
		name := filepath.Base(res.Path)
		if res.OK() {
			fmt.Fprintf(w, "ok    %s  %q / %q\n", name, res.Frontmatter.TitleEn, res.Frontmatter.TitleFa)
			continue
		}
		ok = false
		fmt.Fprintf(w, "FAIL  %s  %v\n", name, res.Err)
	}
	return ok
}
