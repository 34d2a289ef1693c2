// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// LLM is the configuration of the research agent's language models.
//
// The generic QueryGeneratorModel, ReflectionModel and AnswerModel fields
// describe the active (default Gemini) provider; the DeepSeek* fields are
// the DeepSeek equivalents. Variable names carry no prefix so that the
// gateway shares its environment with the agent process.
type LLM struct {
	// LLMProvider selects the active backend family ("gemini", "deepseek").
	// Env: LLM_PROVIDER
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"`

	// QueryGeneratorModel generates the web search queries.
	// Env: QUERY_GENERATOR_MODEL
	QueryGeneratorModel string `env:"QUERY_GENERATOR_MODEL" envDefault:"gemini-2.0-flash"`

	// ReflectionModel reflects on gathered results and finds knowledge gaps.
	// Env: REFLECTION_MODEL
	ReflectionModel string `env:"REFLECTION_MODEL" envDefault:"gemini-2.5-flash"`

	// AnswerModel writes the final answer.
	// Env: ANSWER_MODEL
	AnswerModel string `env:"ANSWER_MODEL" envDefault:"gemini-2.5-pro"`

	// Env: DEEPSEEK_QUERY_GENERATOR_MODEL
	DeepSeekQueryGeneratorModel string `env:"DEEPSEEK_QUERY_GENERATOR_MODEL" envDefault:"deepseek-chat"`

	// Env: DEEPSEEK_REFLECTION_MODEL
	DeepSeekReflectionModel string `env:"DEEPSEEK_REFLECTION_MODEL" envDefault:"deepseek-chat"`

	// Env: DEEPSEEK_ANSWER_MODEL
	DeepSeekAnswerModel string `env:"DEEPSEEK_ANSWER_MODEL" envDefault:"deepseek-reasoner"`

	// NumberOfInitialQueries is how many search queries the agent starts with.
	// Env: NUMBER_OF_INITIAL_QUERIES
	NumberOfInitialQueries int `env:"NUMBER_OF_INITIAL_QUERIES" envDefault:"3"`

	// MaxResearchLoops caps the reflection/search iterations.
	// Env: MAX_RESEARCH_LOOPS
	MaxResearchLoops int `env:"MAX_RESEARCH_LOOPS" envDefault:"2"`
}

// LLMLoader constructs a fresh [LLM] configuration.
type LLMLoader func() (*LLM, error)

// LoadLLM builds the LLM configuration from the current process environment.
// Nothing is cached: every call observes the environment as it is now.
//
// Returns an error wrapping [ErrConfiguration] if a variable holds a value
// that cannot be converted to its field type.
func LoadLLM() (*LLM, error) {
	return parseLLM(nil)
}

// LoadLLMFrom builds the LLM configuration from the given variables instead of
// the process environment. Variables that are absent take their defaults.
func LoadLLMFrom(environment map[string]string) (*LLM, error) {
	if environment == nil {
		environment = map[string]string{}
	}
	return parseLLM(environment)
}

func parseLLM(environment map[string]string) (*LLM, error) {
	cfg := new(LLM)
	if err := parseEnv(cfg, environment); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return cfg, nil
}
