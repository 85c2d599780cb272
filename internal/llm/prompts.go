package llm

// prompts.go keeps the prompts sent to the model in one place so they can be
// tuned without touching the client code.

const (
	// intakeSystemPrompt instructs the model to act as a receptionist and
	// condense the patient's free-text concern for the matched doctor.
	intakeSystemPrompt = "You are a medical receptionist. Summarize the patient's concern professionally in 1-2 sentences for the doctor."

	// prescriptionSystemPrompt constrains the drafting output to the JSON
	// document the prescription service parses. Anything outside that shape
	// is rejected by the caller.
	prescriptionSystemPrompt = "You are a clinical documentation assistant. Respond with a single JSON object and nothing else, using exactly this shape: " +
		`{"medicines":[{"name":"","dosage":"","frequency":"","duration":""}],"instructions":""}. ` +
		"Suggest 1-2 common medications appropriate to the concern and notes, and keep instructions general."
)
