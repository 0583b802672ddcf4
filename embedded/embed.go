// Package embedded bundles the sample template tree and sample tag map into
// the lrt binary using go:embed.
//
// The samples are materialized next to the executable by `lrt init`, which
// is where the default --source and --tags paths point.
package embedded

import "embed"

// Templates holds the sample template tree. Paths inside the FS are rooted
// at "templates/default".
//
//go:embed all:templates/default
var Templates embed.FS

// TemplateRoot is the embedded path of the sample template tree.
const TemplateRoot = "templates/default"

// SampleTags is the sample tag map, a flat JSON object.
//
//go:embed tags/tags_template.json
var SampleTags []byte
