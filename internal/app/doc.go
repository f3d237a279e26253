// Package app contains the adapter's core pipeline. It defines the App
// struct, its options, and the single-invocation run lifecycle: parse
// arguments, build the URL, environment, and request, apply the pre-dispatch
// hook, dispatch against the in-process handler, and format the result. The
// pipeline performs no output side effects and never terminates the
// process; those concerns belong to the entrypoint.
package app
