package prompt

import (
	"fmt"

	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/llm"
)

const repositoryTemplate = `You are an expert software documentation specialist tasked with creating comprehensive, practical documentation for a software repository. This documentation is specifically designed for junior to mid-level developers who need to quickly understand and contribute to the codebase, with the goal of minimizing onboarding time in an organization with some turnover.

Here is the full source code of the repository you need to document:

<repository_code>
%s
</repository_code>

Please create detailed documentation based on this code. For each section, follow this process:
1. List out the key components you need to analyze and summarize each component's role in the system
2. Double-check your statements for accuracy against the provided code
3. Review for conciseness, removing any redundant or unnecessary information
4. Present the final content in markdown format

Create documentation with the following sections:

1. CORE CONCEPTS AND DATA FLOW
   - Identify the primary workflows and data paths
   - Explain the key data structures and their relationships
   - Map out the critical modules and their interactions

2. KEY MODULES WITH IMPLEMENTATION SLICES
   - Identify 3-5 most critical modules by analyzing file sizes and interconnections
   - For each module, extract representative code slices that demonstrate its core functionality
   - Explain the purpose and context of each slice
   - Document common modification patterns for each module

3. INTERACTIVE FLOW DIAGRAMS
   - Create a mermaid.js diagram that shows the main execution paths
   - Highlight decision points and data transformations

4. DEBUGGING COMMON SCENARIOS
   - Document typical failure modes and how to diagnose them
   - Include log patterns to look for and their interpretation
   - Provide step-by-step troubleshooting guides for common issues

5. ENHANCEMENT AND MAINTENANCE GUIDE
   - Provide concrete examples of how to extend the codebase
   - Include code examples for common types of changes (e.g., adding features)
   - Document potential pitfalls and best practices
   - Include any deviations from good practice and suggested fixes for them

6. BUILDING NEW FEATURES
   - Suggest 2-3 potential enhancements with implementation approaches
   - Show integration points for new functionality
   - Provide example code that maintains the project's patterns

Focus on practical, actionable information rather than general descriptions. Include relevant code slices that would help developers understand how the system works. Highlight non-obvious connections between components and implicit assumptions in the code.`

// ForRepository builds the per-chunk prompt for repository documentation
func ForRepository(settings common.Settings) func(chunk string, index, total int) llm.Request {
	return func(chunk string, index, total int) llm.Request {
		userPrompt := fmt.Sprintf(repositoryTemplate, chunk) + languageNote(settings)
		if total > 1 {
			userPrompt += PartNote(index, total)
		}
		return llm.Request{
			UserPrompt: userPrompt,
		}
	}
}
