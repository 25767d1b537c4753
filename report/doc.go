// Package report turns a router.Result into the plain summary values
// spec.md §6 says the core publishes: success rate, best cost, and
// the per-net outcomes making up the best attempt. It has no
// dependency on how that summary is displayed or persisted — ioadapter
// is the collaborator that writes it out.
package report
