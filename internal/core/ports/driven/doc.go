// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CourseStore: course catalog persistence and keyword search
//   - DocumentStore: ingested document persistence and keyword search
//   - TextExtractor: one strategy of the text-extraction cascade
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: language-understanding backend. Without it, keyword
//     extraction uses the deterministic frequency fallback.
//   - PromptStore: customisable prompt templates. Without it, hardcoded
//     defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter or extractor package
package driven
