package yamlconv

import (
	"testing"

	"github.com/signadot/jx/ir"
	"github.com/signadot/jx/parse"
)

const yamlDoc = `
config:
  time_step: 0.01
  auxiliary_info: true
  options:
    - gravity
    - collision
score: null
`

const jsonDoc = `{
	"config": {
		"time_step": 0.01,
		"auxiliary_info": true,
		"options": ["gravity", "collision"]
	},
	"score": null
}`

func TestParse(t *testing.T) {
	fromYAML, err := Parse([]byte(yamlDoc))
	if err != nil {
		t.Fatal(err)
	}
	fromJSON, err := parse.Parse([]byte(jsonDoc))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(fromYAML, fromJSON) {
		t.Errorf("YAML and JSON forms differ:\n%v\n%v", fromYAML, fromJSON)
	}
}

func TestRoundTrip(t *testing.T) {
	node, err := parse.Parse([]byte(jsonDoc))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Encode(node)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(out)
	if err != nil {
		t.Fatalf("reparsing own output:\n%s\n%v", out, err)
	}
	if !ir.Equal(node, again) {
		t.Errorf("round trip changed the document:\n%s", out)
	}
}

func TestParseErrs(t *testing.T) {
	if _, err := Parse([]byte("a: [1, 2")); err == nil {
		t.Error("malformed YAML accepted")
	}
}
