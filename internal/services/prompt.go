package services

import "strings"

const tutorPromptTemplate = `
You are an expert AI tutor that explains competitive exam problems step-by-step.

Given a question in LaTeX and its final answer:
1. Convert it to a readable format.
2. Solve the following question step-by-step in a fully structured and logical manner. Use the format: Step 1:, Step 2:, Step 3:, ..., and so on. Do not use any markdown symbols like *, **, #, or _.
3. Avoid all formatting styles. Output should be in plain text only, clearly broken into steps.
4. Final answer should be same.
5. dont's use astericks in the response.


Question: {question}
Final Answer: {answer}

`

// BuildPrompt fills the tutoring template. Values are substituted as-is.
func BuildPrompt(question, answer string) string {
	return strings.NewReplacer("{question}", question, "{answer}", answer).Replace(tutorPromptTemplate)
}
