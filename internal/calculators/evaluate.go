package calculators

import (
	"calchub/internal/logger"
	"calchub/pkg/calctypes"
)

// Evaluation is the outcome of running a calculator on a set of inputs.
type Evaluation struct {
	Raw     calctypes.Result
	Outputs []calctypes.OutputField
	Chart   *calctypes.Chart
}

// Headline returns the highlighted output, or the first one.
func (e *Evaluation) Headline() (calctypes.OutputField, bool) {
	if e == nil || len(e.Outputs) == 0 {
		return calctypes.OutputField{}, false
	}
	for _, o := range e.Outputs {
		if o.Highlight {
			return o, true
		}
	}
	return e.Outputs[0], true
}

// Failed reports whether the raw result carries an input error.
func (e *Evaluation) Failed() bool {
	if e == nil {
		return false
	}
	_, failed := e.Raw.Failure()
	return failed
}

// Evaluate runs calculate, format and the optional chart function.
// A panic anywhere in the calculator yields nil: the host shows nothing.
func Evaluate(def *calctypes.Definition, inputs calctypes.Inputs) (ev *Evaluation) {
	if def == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("Calculator panicked", "calculator", def.ID, "panic", r)
			ev = nil
		}
	}()

	raw := def.Calculate(inputs)
	ev = &Evaluation{
		Raw:     raw,
		Outputs: def.FormatResults(raw),
	}
	if def.ChartData != nil {
		ev.Chart = def.ChartData(raw)
	}
	return ev
}

// Defaults seeds an input map from the definition's default values.
func Defaults(def *calctypes.Definition) calctypes.Inputs {
	inputs := make(calctypes.Inputs, len(def.Inputs))
	for _, in := range def.Inputs {
		inputs[in.ID] = in.Default
	}
	return inputs
}
