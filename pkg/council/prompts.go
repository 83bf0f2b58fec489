package council

import (
	"fmt"
	"sort"
	"strings"

	"github.com/plenumhq/plenum/pkg/council/rank"
)

// judgeSystemPrompt frames the pairwise comparison call.
const judgeSystemPrompt = `You are an impartial judge evaluating two responses to the same task. You compare them on accuracy, clarity, completeness, and depth, and you always conclude with exactly one verdict token.`

// judgePromptTemplate is the user message for one pairwise comparison.
// %s = task, %s = first display name, %s = first content, %s = second
// display name, %s = second content.
//
// The verdict tokens are positional: A always refers to the first response
// shown, B to the second, whatever their display names are.
const judgePromptTemplate = `You are evaluating responses to the task: "%s"

Below are two responses to compare:

--- Response %s (referred to as A) ---
%s

--- Response %s (referred to as B) ---
%s

Compare these responses based on:
- Accuracy and correctness
- Clarity and coherence
- Completeness of the answer
- Insightfulness and depth

First, provide a brief explanation of your evaluation. Then conclude with your verdict using EXACTLY one of these tokens in double brackets:
- [[A≫B]]: the first response is significantly better
- [[A>B]]: the first response is slightly better
- [[A=B]]: both responses are equally good
- [[B>A]]: the second response is slightly better
- [[B≫A]]: the second response is significantly better

Example format:
The first response covers X well but misses Y...
The second response is accurate but shallow on Z...
[[A>B]]

Only the last token in your reply counts. Now provide your evaluation:`

// chairmanSystemPrompt frames the synthesis call.
const chairmanSystemPrompt = `You are the chairman of a council of AI models. The council members have each answered a question and then ranked one another's answers. Your task is to synthesize their perspectives and rankings into a single, comprehensive, accurate final answer.`

// chairmanPromptTemplate is the user message for the synthesis call.
// %s = task, %s = formatted perspectives, %s = ranking digest.
const chairmanPromptTemplate = `Original question: %s

Council perspectives:

%s

Peer-review rankings:

%s

Synthesize all of this into a clear, well-reasoned final answer to the original question. Weigh the perspectives by what the rankings reveal about their quality, and note substantive disagreement where it exists.`

// buildJudgePrompt renders the comparison prompt for one candidate pair.
// The display names are labels under anonymization, role names otherwise.
func buildJudgePrompt(task string, nameA, contentA, nameB, contentB string) string {
	return fmt.Sprintf(judgePromptTemplate, task, nameA, contentA, nameB, contentB)
}

// buildSynthesisPrompt renders the chairman's user message from the task,
// the successful answers, and the computed score maps.
func buildSynthesisPrompt(task string, candidates []Answer, labels map[string]string, anonymize bool, scores map[string]MethodScores) string {
	var perspectives strings.Builder
	for i, c := range candidates {
		if i > 0 {
			perspectives.WriteString("\n\n")
		}
		fmt.Fprintf(&perspectives, "--- Perspective %s ---\n%s", displayName(c, labels, anonymize), c.Content)
	}

	digest := rankingDigest(candidates, labels, anonymize, scores)
	if digest == "" {
		digest = "No peer-review rankings are available."
	}

	return fmt.Sprintf(chairmanPromptTemplate, task, perspectives.String(), digest)
}

// rankingDigest formats each method's ranking as one compact line, best
// first. Methods are listed in a fixed order so the digest is stable.
func rankingDigest(candidates []Answer, labels map[string]string, anonymize bool, scores map[string]MethodScores) string {
	if len(scores) == 0 {
		return ""
	}

	rankCandidates := make([]rank.Candidate, len(candidates))
	for i, c := range candidates {
		rankCandidates[i] = rank.Candidate{Name: c.Role, Index: i}
	}
	display := make(map[string]string, len(candidates))
	for _, c := range candidates {
		display[c.Role] = displayName(c, labels, anonymize)
	}

	methods := make([]string, 0, len(scores))
	for m := range scores {
		methods = append(methods, m)
	}
	sort.Strings(methods)

	var sb strings.Builder
	for _, method := range methods {
		ordered := rank.RankOrder(scores[method].Scores, rankCandidates)
		parts := make([]string, len(ordered))
		for i, name := range ordered {
			parts[i] = fmt.Sprintf("%s (%.2f)", display[name], scores[method].Scores[name])
		}
		fmt.Fprintf(&sb, "%s: %s\n", method, strings.Join(parts, " > "))
	}
	return strings.TrimRight(sb.String(), "\n")
}
