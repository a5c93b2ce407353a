// Package errors provides structured, actionable error messages for Stencil.
//
// Each error carries a stable code, a plain-language message, an optional
// recovery hint, and a documentation URL.
//
// # Error Categories
//
// Errors are organized into categories:
//   - validation: bad user input (project names, SEO templates)
//   - config: unreadable or malformed configuration files
//   - exec: external command failures (package manager, scaffolding CLIs)
//   - cli: prompt, terminal, and local file-write failures
//
// # Usage
//
//	err := errors.New("E101").
//	    WithDetail("Project name 'my/app' contains '/'").
//	    WithSuggestion("Use letters, numbers, spaces, hyphens, and underscores")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Invalid project name
//	//
//	//   Project name 'my/app' contains '/'
//	//
//	//   Hint: Use letters, numbers, spaces, hyphens, and underscores
//	//
//	//   Learn more: https://stencil-kit.dev/docs/errors/E101
package errors
