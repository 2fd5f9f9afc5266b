// Package stages implements the rule stages an intake request passes
// through. Each stage inspects the configuration profile and either
// annotates the intake context or performs the terminal store mutation,
// returning an Outcome that tells the pipeline whether to keep going.
// Stages register themselves by name at init time; the pipeline resolves
// them from the names listed in configuration.
package stages
