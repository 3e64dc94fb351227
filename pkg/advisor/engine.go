package advisor

import (
	"context"
	"fmt"

	"fin-jurist-be/internal/constant"
	"fin-jurist-be/internal/pkg/logger"
	"fin-jurist-be/pkg/llm"
)

// maxResponseTokens bounds the model output per call.
const maxResponseTokens = 1000

// documentContentLimit is how much of an uploaded document is fed into
// the analysis prompt, in characters.
const documentContentLimit = 4000

// Engine assembles role-tagged prompts and forwards them to the LLM
// provider. Provider failures never escape: every error is mapped to
// the fixed fallback text so the outer conversation flow cannot break
// on a model-provider hiccup. One Engine is built at startup and shared
// across all requests.
type Engine struct {
	provider llm.LLMProvider
	log      logger.ILogger
}

func NewEngine(provider llm.LLMProvider, log logger.ILogger) *Engine {
	return &Engine{
		provider: provider,
		log:      log,
	}
}

// GenerateResponse prepends the system prompt to the supplied history
// and returns the model's reply, or the fallback string on any failure.
func (e *Engine) GenerateResponse(ctx context.Context, history []llm.Message) string {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: constant.SystemPrompt,
	})
	messages = append(messages, history...)

	reply, err := e.provider.Chat(ctx, messages, llm.WithMaxTokens(maxResponseTokens))
	if err != nil {
		e.log.Error("advisor", "LLM provider call failed", map[string]interface{}{
			"error": err.Error(),
			"turns": len(history),
		})
		return constant.FallbackResponse
	}
	return reply
}

func (e *Engine) generateFromPrompt(ctx context.Context, prompt string) string {
	return e.GenerateResponse(ctx, []llm.Message{{Role: "user", Content: prompt}})
}

// GenerateLegalAdvice answers a single financial-legal question with
// optional extra context.
func (e *Engine) GenerateLegalAdvice(ctx context.Context, question, extraContext string) string {
	prompt := fmt.Sprintf("Financial-legal question: %s\n\nAdditional context: %s", question, extraContext)
	return e.generateFromPrompt(ctx, prompt)
}

// AnalyzeContract runs the structured contract analysis template.
func (e *Engine) AnalyzeContract(ctx context.Context, contractText, contractType string) string {
	if contractType == "" {
		contractType = "financial"
	}
	prompt := fmt.Sprintf(constant.ContractAnalysisTemplate, contractType, contractText)
	return e.generateFromPrompt(ctx, prompt)
}

// DetectFraud assesses a situation description for scam indicators.
func (e *Engine) DetectFraud(ctx context.Context, description string) string {
	prompt := fmt.Sprintf(constant.FraudDetectionTemplate, description)
	return e.generateFromPrompt(ctx, prompt)
}

// GenerateDocumentTemplate produces a fill-in legal document template.
// Known document types are expanded to richer descriptions.
func (e *Engine) GenerateDocumentTemplate(ctx context.Context, documentType, details string) string {
	description, ok := constant.DocumentTypeAliases[documentType]
	if !ok {
		description = fmt.Sprintf("legal document template for %s", documentType)
	}
	prompt := fmt.Sprintf(constant.DocumentTemplateTemplate, description, details)
	return e.generateFromPrompt(ctx, prompt)
}

// ProvideFinancialEducation explains a financial concept.
func (e *Engine) ProvideFinancialEducation(ctx context.Context, topic string) string {
	prompt := fmt.Sprintf(constant.FinancialEducationTemplate, topic)
	return e.generateFromPrompt(ctx, prompt)
}

// AnalyzeDocument analyzes extracted document text. Content beyond the
// limit is dropped to stay inside the model's context budget.
func (e *Engine) AnalyzeDocument(ctx context.Context, content, fileType string) string {
	if len(content) > documentContentLimit {
		content = content[:documentContentLimit]
	}
	prompt := fmt.Sprintf(constant.DocumentAnalysisTemplate, fileType, content)
	return e.generateFromPrompt(ctx, prompt)
}

// AnalyzeAudioTranscript responds to a transcribed voice message.
func (e *Engine) AnalyzeAudioTranscript(ctx context.Context, transcript string) string {
	prompt := fmt.Sprintf(constant.AudioAnalysisTemplate, transcript)
	return e.generateFromPrompt(ctx, prompt)
}
