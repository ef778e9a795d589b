// Package memory sets the Go memory limit for containerized deployments.
//
// Thumbnail generation decodes full-size images, so a process without a heap
// limit can be OOM-killed by the container runtime before the garbage
// collector reacts. Call [ConfigureFromEnv] first thing in main:
//
//   - GOMEMLIMIT, when set, is left to the runtime.
//   - MEMORY_LIMIT is the container limit in bytes, typically injected with
//     the Kubernetes Downward API (resourceFieldRef: limits.memory).
//   - MEMORY_RATIO is the share of MEMORY_LIMIT given to the heap
//     (default 0.75).
package memory
