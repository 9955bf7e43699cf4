package prompt

import (
	"fmt"

	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/llm"
)

const fileSystemPrompt = "You are a TypeScript documentation expert who writes clear, helpful documentation for junior developers with 1-4 years experience."

const fileTemplate = `You are a TypeScript documentation expert. Your task is to add comprehensive documentation
to TypeScript code following Google's documentation standards but adapted for junior developers (1-4 years experience).

Key Requirements:
1. Use TypeDoc/JSDoc format
2. Write in plain language avoiding unnecessary technical jargon
3. Include concrete examples for complex functions
4. Explicitly document error scenarios and edge cases
5. Explain the "why" not just the "what"
6. Add comments for non-obvious code sections

For each function, include:
- A clear description of purpose
- Detailed @param descriptions with types and examples
- @throws documentation with specific error scenarios
- @returns description with example return value
- @example section for complex functions
- Common gotchas or edge cases
- Links to related functions or documentation

Please document the following TypeScript code using these standards:

%s

Return ONLY the documented code without any additional explanations or markdown formatting.`

// ForFile builds the per-chunk prompt for single-file documentation
func ForFile(settings common.Settings) func(chunk string, index, total int) llm.Request {
	return func(chunk string, index, total int) llm.Request {
		userPrompt := fmt.Sprintf(fileTemplate, chunk) + languageNote(settings)
		if total > 1 {
			userPrompt += PartNote(index, total)
		}
		return llm.Request{
			SystemPrompt: fileSystemPrompt,
			UserPrompt:   userPrompt,
		}
	}
}
