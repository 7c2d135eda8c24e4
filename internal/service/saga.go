package service

// sagaStep is one write in a multi-step provisioning sequence. compensate
// undoes the step when a later one fails; nil means the step needs no
// rollback of its own.
type sagaStep struct {
	name       string
	run        func() error
	compensate func() error
}

// runSaga executes steps in order. When a step fails, the compensations of
// every completed step run in reverse; the step's own error is returned
// either way. A compensation that itself fails is reported through
// onCompensateErr and the remaining compensations still run.
func runSaga(steps []sagaStep, onCompensateErr func(stepName string, err error)) error {
	for i, step := range steps {
		if err := step.run(); err != nil {
			for j := i - 1; j >= 0; j-- {
				if steps[j].compensate == nil {
					continue
				}
				if cerr := steps[j].compensate(); cerr != nil && onCompensateErr != nil {
					onCompensateErr(steps[j].name, cerr)
				}
			}
			return err
		}
	}
	return nil
}
