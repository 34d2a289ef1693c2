// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LLMConfig is the public projection of the LLM configuration returned by
// GET /api/llm-config.
//
// The field names are provider specific on purpose: the gemini_* fields carry
// the generic active-provider models of the configuration, while the
// deepseek_* fields carry the DeepSeek-specific models. All seven fields are
// always present in the JSON document.
type LLMConfig struct {
	// LLMProvider selects which backend family is active ("gemini", "deepseek").
	LLMProvider string `json:"llm_provider"`

	GeminiQueryGeneratorModel string `json:"gemini_query_generator_model"`
	GeminiReflectionModel     string `json:"gemini_reflection_model"`
	GeminiAnswerModel         string `json:"gemini_answer_model"`

	DeepSeekQueryGeneratorModel string `json:"deepseek_query_generator_model"`
	DeepSeekReflectionModel     string `json:"deepseek_reflection_model"`
	DeepSeekAnswerModel         string `json:"deepseek_answer_model"`
}
