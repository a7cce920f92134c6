// Package scaffold provides the starter manifest written by `speccheck init`.
package scaffold

// SpecsJSONTemplate is the starter specs.json. Every required field is
// populated with a placeholder that validates cleanly, so a freshly
// initialized manifest passes a check run out of the box.
const SpecsJSONTemplate = `{
  "specs": [
    {
      "title": "My Specification",
      "description": "Describe what this specification covers.",
      "author": "Your Name",
      "spec_directory": "./spec",
      "spec_terms_directory": "terms-definitions",
      "output_path": "./docs",
      "markdown_paths": [
        "intro.md"
      ],
      "logo": "logo.svg",
      "logo_link": "https://example.com",
      "favicon": "favicon.ico",
      "source": {
        "host": "github",
        "account": "your-account",
        "repo": "your-spec-repo",
        "branch": "main"
      }
    }
  ]
}
`
