package constant

// SystemPrompt defines the FinYurist assistant persona prepended to
// every conversation sent to the model.
const SystemPrompt = `You are FinYurist AI, a professional financial legal advisor specializing in financial law and contract analysis. Your expertise includes:

1. FINANCIAL LAW EXPERTISE:
- Banking regulations and consumer protection
- Investment laws and securities regulations
- Insurance law and claims procedures
- Credit and lending regulations
- Financial fraud prevention and detection
- Tax obligations and financial compliance
- Consumer financial rights and protections

2. CONTRACT ANALYSIS:
- Analyze financial contracts (loans, mortgages, insurance policies, investment agreements)
- Identify potentially harmful clauses and hidden fees
- Explain complex legal terms in simple language
- Highlight risks and red flags
- Suggest protective measures and alternatives

3. WARNING SYSTEM:
- Detect signs of financial fraud and scams
- Alert users to predatory lending practices
- Identify high-risk investment schemes
- Warn about unfair contract terms
- Provide financial safety recommendations

4. DOCUMENT TEMPLATES:
- Generate complaint letters for financial disputes
- Create contract review checklists
- Provide legal notice templates
- Draft financial dispute resolution documents
- Generate consumer protection claim forms

ALWAYS:
- Provide clear, practical advice in English
- Use simple language to explain complex legal concepts
- Include specific warnings about potential risks
- Offer actionable steps and recommendations
- Maintain professional but accessible tone
- Include disclaimers when appropriate

REMEMBER: You provide informational guidance only. Always recommend consulting qualified legal professionals for official legal advice.`

// FallbackResponse is returned to callers whenever the model provider
// fails. Callers of the advisory engine never see the provider error.
const FallbackResponse = "Sorry, there is currently an issue with the AI service. Please try again later."

// ContractAnalysisTemplate wraps a contract into the structured
// analysis prompt. Args: contract type, contract text.
const ContractAnalysisTemplate = `Please analyze this %s contract and provide:

1. SUMMARY: Brief overview of the contract's main terms
2. KEY TERMS: Important clauses and conditions
3. RISKS & RED FLAGS: Potentially harmful or unfavorable terms
4. HIDDEN COSTS: Any fees or charges that might not be obvious
5. RECOMMENDATIONS: Suggestions for protection or negotiation
6. WARNING LEVEL: Rate the risk level (LOW/MEDIUM/HIGH) with explanation

Contract text:
%s`

// FraudDetectionTemplate wraps a situation description. Arg: description.
const FraudDetectionTemplate = `Please analyze this financial situation for potential fraud or scam indicators:

%s

Provide:
1. FRAUD RISK ASSESSMENT: Rate the risk level (LOW/MEDIUM/HIGH)
2. RED FLAGS: Specific warning signs identified
3. COMMON SCAM PATTERNS: If this matches known fraud schemes
4. PROTECTIVE ACTIONS: Immediate steps to take
5. VERIFICATION STEPS: How to verify legitimacy
6. REPORTING: Where to report if fraud is suspected

Be thorough in identifying potential risks and provide clear warnings.`

// DocumentTemplateTemplate asks for a fill-in legal template.
// Args: template description, details.
const DocumentTemplateTemplate = `Generate a professional %s template.

Specific details: %s

The template should:
1. Be professionally formatted
2. Include all necessary legal elements
3. Have placeholder fields marked with [PLACEHOLDER]
4. Include clear instructions for completion
5. Be suitable for financial/legal matters
6. Include appropriate disclaimers

Provide the complete template ready for use.`

// FinancialEducationTemplate explains a financial concept. Arg: topic.
const FinancialEducationTemplate = `Explain the financial concept: %s

Provide:
1. DEFINITION: Clear, simple explanation
2. HOW IT WORKS: Step-by-step breakdown
3. BENEFITS & RISKS: Pros and cons
4. REAL-WORLD EXAMPLES: Practical scenarios
5. CONSUMER TIPS: Practical advice for consumers
6. WARNING SIGNS: What to watch out for
7. LEGAL PROTECTIONS: Relevant consumer rights

Use simple language that anyone can understand.`

// DocumentAnalysisTemplate is used for uploaded PDF/Word content.
// Args: file type label, document content (pre-truncated).
const DocumentAnalysisTemplate = `You are a legal and financial expert. Analyze the following %s content and provide:

1. **Document Summary**: Brief overview of the document
2. **Key Points**: Main legal and financial points
3. **Potential Risks**: Any legal or financial risks identified
4. **Recommendations**: Suggested actions or considerations
5. **Important Clauses**: Critical terms and conditions to note

Document Content:
%s

Provide your analysis in a clear, structured format.`

// AudioAnalysisTemplate frames a transcribed voice message. Arg: transcript.
const AudioAnalysisTemplate = `You are a legal and financial expert. The user has sent a voice message that was transcribed to:

"%s"

Provide a helpful response addressing their legal or financial question or concern. If the transcription seems unclear, ask for clarification.`

// DocumentTypeAliases maps known template identifiers to their
// human-readable descriptions used in the generation prompt.
var DocumentTypeAliases = map[string]string{
	"complaint_letter":          "financial complaint letter for disputes with banks or financial institutions",
	"contract_review_checklist": "checklist for reviewing financial contracts",
	"legal_notice":              "formal legal notice for financial disputes",
	"dispute_resolution":        "document for financial dispute resolution",
	"consumer_protection_claim": "consumer protection claim form",
	"loan_agreement_review":     "loan agreement review template",
	"insurance_claim_letter":    "insurance claim dispute letter",
	"investment_complaint":      "investment fraud or dispute complaint",
}
