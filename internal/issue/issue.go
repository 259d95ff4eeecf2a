// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	ManifestNotFoundId Id = iota + 1
	ManifestParseErrorId
	ConfigLoadFailedId
	DependencyCycleId
	UnknownPackageId
	InvalidEnvId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	name     string      // slug accepted by `extkit explain`
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Name() string {
	return i.name
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the raw document including the "See also" section.
func (i *Issue) Markdown() string {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range slices.Concat(i.docLinks, i.extLinks) {
			md.WriteString("\n- <")
			md.WriteString(string(link))
			md.WriteString(">")
		}
	}
	return md.String()
}

// Render renders the issue for a terminal using the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	manifestNotFoundIssue = &Issue{
		id:   ManifestNotFoundId,
		name: "manifest-not-found",
		mdMsg: `
# No package manifests found!

extkit reads one manifest per package from the manifest root:

~~~
<manifest_root>/<package>/package.cue
<manifest_root>/<package>/package.toml
~~~

## Things you can try:
- Point extkit at the right directory:
~~~
$ extkit --config ./extkit.cue apps
$ EXTKIT_MANIFEST_ROOT=./deps extkit apps
~~~
- Check that every package directory holds a ` + "`package.cue`" + ` or ` + "`package.toml`" + `
- Check that the directory name matches the manifest ` + "`name`" + ` field`,
	}

	manifestParseErrorIssue = &Issue{
		id:   ManifestParseErrorId,
		name: "manifest-parse-error",
		mdMsg: `
# Failed to parse a package manifest!

A manifest exists but could not be decoded or validated.

## Common causes:
- CUE syntax errors (missing quotes, unbalanced braces)
- Unknown fields (only name, deps, modules, config and env are allowed)
- A dependency listed twice, or an identifier containing whitespace

## Example manifest:
~~~cue
name:    "web"
deps:    ["http", "db"]
modules: ["Web.Router", "Web.Endpoint"]
config:  { poolSize: 10 }
env: production: { poolSize: 50 }
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id:   ConfigLoadFailedId,
		name: "config-load-failed",
		mdMsg: `
# Failed to load configuration!

The extkit configuration file could not be read or does not match the schema.

## Things you can try:
- Show the effective configuration:
~~~
$ extkit config show
~~~
- Check the file for CUE syntax errors
- Remove the file to fall back to the defaults

## Example configuration:
~~~cue
manifest_root:   "./deps"
env:             "development"
active_packages: ["web"]
log_level:       "info"
~~~`,
	}

	dependencyCycleIssue = &Issue{
		id:   DependencyCycleId,
		name: "dependency-cycle",
		mdMsg: `
# Dependency cycle detected!

Package manifests depend on each other in a loop, so no load order exists.
Listing packages with ` + "`extkit apps`" + ` still works; only ` + "`extkit order`" + ` needs an acyclic graph.

## Things you can try:
- Follow the cycle printed in the error and remove one of its edges
- Move the shared code into a new package that both sides depend on`,
	}

	unknownPackageIssue = &Issue{
		id:   UnknownPackageId,
		name: "unknown-package",
		mdMsg: `
# Unknown package!

No manifest exists for the requested package. Dependency walks keep unknown
packages as leaves, but commands that need the manifest itself fail.

## Things you can try:
- List the packages extkit knows about:
~~~
$ extkit apps
~~~
- Check the spelling of the package name`,
	}

	invalidEnvIssue = &Issue{
		id:   InvalidEnvId,
		name: "invalid-env",
		mdMsg: `
# Invalid build environment!

The build environment must be one of ` + "`development`" + `, ` + "`test`" + ` or ` + "`production`" + `.

## Things you can try:
~~~
$ extkit --env production pkgconfig web
~~~`,
	}

	issues = map[Id]*Issue{
		manifestNotFoundIssue.Id():   manifestNotFoundIssue,
		manifestParseErrorIssue.Id(): manifestParseErrorIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		dependencyCycleIssue.Id():    dependencyCycleIssue,
		unknownPackageIssue.Id():     unknownPackageIssue,
		invalidEnvIssue.Id():         invalidEnvIssue,
	}
)

// Values returns every catalogued issue ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
}

func Get(id Id) *Issue {
	return issues[id]
}

// Lookup finds an issue by its slug name.
func Lookup(name string) (*Issue, bool) {
	for _, i := range issues {
		if i.name == name {
			return i, true
		}
	}
	return nil, false
}
