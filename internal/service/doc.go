// Package service contains the application-specific use cases of the task
// analyzer. It orchestrates the domain layer (the scoring strategies, the
// strategy registry, and the dependency-cycle detector) to fulfill the
// three operations the delivery layers expose: analyze, suggest, and
// validate.
//
// The analysis pipeline is stateless: every call operates on its own
// request-scoped batch, so a single Analyzer instance serves any number of
// concurrent requests without synchronization. Services receive their
// dependencies through constructor injection; tests pin the reference date
// through the clock variant of the constructor.
package service
