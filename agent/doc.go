// Package agent turns validation findings into machine-applicable
// corrections by way of a language model.
//
// One round runs: Prompt renders the snapshot inventory and its report
// into a review request; a Client returns Corrections as strict JSON,
// referencing elements by short tags; Ops resolves the tags back to
// snapshot ids and compiles the corrections into mutation ops. Applying
// the ops and re-validating is the caller's loop, so the engine stays
// free of any model dependency.
//
// Tags (W1, D2, Win1, R3) are assigned in authoring order by both
// Prompt and Ops, which is what lets the two sides of the conversation
// agree on numbering without carrying ids through the model.
package agent
