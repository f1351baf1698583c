// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - BufferStore: Text buffer and revision persistence
//   - StopwordStore: The mutable stopword set used by frequency analysis
//   - Segmenter: Tokenizers selected by name for frequency analysis
//   - ConfigStore: Application configuration
//   - Loader / LoaderRegistry: File to text extraction
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - NLPBackend: Entity, sentiment, syntax and segmentation. Without it the
//     "backend" segmenter and the nlp commands return ErrNLPUnavailable.
//   - Rewriter: Text rewriting. Without it rewrite is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or algorithm package
package driven
