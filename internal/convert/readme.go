// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"regexp"
	"strings"
	"text/template"
)

// readmeNoteName sorts the generated read-me ahead of every article note.
const readmeNoteName = "00 - READ ME FIRST"

// readmeTmpl renders the generated read-me note from material harvested
// during conversion.
var readmeTmpl = template.Must(template.New("readme").Parse(`# {{.Nomicon}}

These notes were converted from the {{.Nomicon}} text archive. Each numbered
list in the original articles is now a rollable table: the ` + "`dice:`" + ` line
above a table rolls on it (Dice Roller plugin required) and links back to
the anchor printed below the table.

{{.ThankYou}}
{{.OriginalReadme}}`))

var (
	// thanksLine finds the publisher's acknowledgement carried by most articles.
	thanksLine = regexp.MustCompile(`(?m)^Thank you to.*$`)

	// nomiconMarker identifies which collection the articles came from.
	nomiconMarker = regexp.MustCompile(`(?m)^Monstrous Lair|^20 Things`)
)

// readmeInfo gathers read-me material while articles stream through a
// conversion run: the collection kind, the first acknowledgement line, and
// the diverted original read-me, each captured at most once.
type readmeInfo struct {
	nomicon        string
	thankYou       string
	originalReadme string
}

type readmeContext struct {
	Nomicon        string
	ThankYou       string
	OriginalReadme string
}

func (r *readmeInfo) saveOriginalReadme(original string) {
	r.originalReadme = original
}

func (r *readmeInfo) updateFromArticle(article string) {
	if r.thankYou == "" {
		r.thankYou = thanksLine.FindString(article)
	}
	if r.nomicon == "" {
		switch nomiconMarker.FindString(article) {
		case "Monstrous Lair":
			r.nomicon = "Laironomicon"
		case "20 Things":
			r.nomicon = "Thingonomicon"
		}
	}
}

// readme renders the generated read-me, or reports false when the run
// never produced both a collection kind and an acknowledgement line.
func (r *readmeInfo) readme() (string, bool) {
	if r.nomicon == "" || r.thankYou == "" {
		return "", false
	}
	ctx := readmeContext{Nomicon: r.nomicon, ThankYou: r.thankYou}
	if r.originalReadme != "" {
		ctx.OriginalReadme = "\n\n-----\n\nHere is the original Read Me\n\n" + r.originalReadme
	}
	var b strings.Builder
	if err := readmeTmpl.Execute(&b, ctx); err != nil {
		return "", false
	}
	return b.String(), true
}
