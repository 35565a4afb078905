// Package errors provides the coded error type used across build-roller.
//
// Errors carry a Code, a user facing Message, an optional Cause and free form
// metadata. Codes survive wrapping, so a NotFound raised by the loader is still
// a NotFound after the catalog service adds its own context.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFoundf("data file %q not found", path).WithMeta("path", path)
//	err := errors.FailedPrecondition("catalog has no weapons")
//
// Wrapping errors:
//
//	if err := l.Load(ctx, path); err != nil {
//	    return errors.Wrap(err, "failed to load catalog")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // point the user at the missing file
//	}
//
//	code := errors.GetCode(err)
//	os.Exit(code.ExitCode())
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	return vb.Build()
//
// # Layer-Specific Guidelines
//
// Loader and repository layer:
//   - Return NotFound for missing sources and cache misses
//   - Include the path or cache key in metadata
//   - Wrap I/O and storage errors with context
//
// Service/Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Return FailedPrecondition when a catalog cannot produce a build
//
// Command layer:
//   - Print GetMessage for known codes and exit with Code.ExitCode
package errors
