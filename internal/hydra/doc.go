// Package hydra talks to the Hydra build farm.
//
// Two collaborators are wrapped here:
//
//   - hydra-check, run as "<argv...> <package> --json", which reports the
//     known builds of a package. Its JSON object maps a job name to a list of
//     build records; Report preserves the document order of both levels.
//   - the Hydra JSON API, queried with "Accept: application/json":
//     GET /build/<id> for the evaluations a build belongs to, and
//     GET /eval/<id> for the inputs of one evaluation.
//
// Failures are returned as typed errors from internal/errors so the CLI can
// map them to exit codes.
package hydra
