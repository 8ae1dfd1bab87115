package types

type AgentConfig struct {
	Episodes    int
	Horizon     int
	Policy      Policy
	Environment Environment
}

// RL Agent configured with the corresponding
// policy and environment
type Agent struct {
	config *AgentConfig
	// collects the traces of the run
	// Only populated if the Run function is invoked
	traces      []*Trace
	policy      Policy
	environment Environment
}

// Instantiates a new Agent
func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config:      config,
		traces:      make([]*Trace, config.Episodes),
		policy:      config.Policy,
		environment: config.Environment,
	}
}

// Run the agent for the specified number of episodes and horizon
func (a *Agent) Run() error {
	for i := 0; i < a.config.Episodes; i++ {
		trace, err := a.RunEpisode(i)
		if err != nil {
			return err
		}
		a.traces[i] = trace
	}
	return nil
}

func (a *Agent) Traces() []*Trace {
	return a.traces
}

// RunEpisode runs a single episode and returns the resulting trace
func (a *Agent) RunEpisode(episode int) (*Trace, error) {
	obs, _, err := a.environment.Reset(nil)
	if err != nil {
		return nil, err
	}
	trace := NewTrace()

	for i := 0; i < a.config.Horizon; i++ {
		action := a.policy.NextAction(i, obs)
		result, err := a.environment.Step(action)
		if err != nil {
			return trace, err
		}
		a.policy.Update(i, obs, action, result)

		trace.Append(TraceStep{
			Observation:     obs,
			Action:          action,
			NextObservation: result.Observation,
			Cost:            result.Cost,
			Terminated:      result.Terminated,
			Truncated:       result.Truncated,
			Info:            result.Info,
		})
		if result.Terminated || result.Truncated {
			break
		}
		obs = result.Observation
	}
	a.policy.UpdateEpisode(episode, trace)

	return trace, nil
}
