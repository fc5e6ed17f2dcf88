package metrics

// Pre-defined metrics for the KZG engine. They live in DefaultRegistry so
// the engine and the CLI share them without passing a registry around.

var (
	// SettingsLoadTime records how long each trusted setup took to load.
	SettingsLoadTime = DefaultRegistry.Histogram("kzg.settings.load_us")
	// SettingsLoadFailures counts trusted setup loads that failed. Failures
	// are sticky, so this never exceeds the number of backends.
	SettingsLoadFailures = DefaultRegistry.Counter("kzg.settings.load_failures")

	// ProofsAccepted counts blob proofs that verified.
	ProofsAccepted = DefaultRegistry.Counter("kzg.verify.accepted")
	// ProofsRejected counts blob proofs that were well formed but failed
	// the pairing check.
	ProofsRejected = DefaultRegistry.Counter("kzg.verify.rejected")
	// InputsMalformed counts calls rejected before any curve arithmetic ran.
	InputsMalformed = DefaultRegistry.Counter("kzg.inputs.malformed")

	// GuestVerdicts counts verdicts committed by the guest entrypoint.
	GuestVerdicts = DefaultRegistry.Counter("guest.verdicts")
)

// SettingsGauge returns the "loaded" gauge for the named trusted setup.
func SettingsGauge(backend string) *Gauge {
	return DefaultRegistry.Gauge("kzg.settings.loaded." + backend)
}
