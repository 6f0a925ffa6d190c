package observability

// Semantic attribute keys shared across all providers, so log aggregation can
// filter on consistent names regardless of which adapter emitted the event.
const (
	AttrLLMProvider = "llm.provider"
	AttrLLMEndpoint = "llm.endpoint"
	AttrLLMModel    = "llm.model"

	AttrRequestMessagesCount = "llm.request.messages_count"
	AttrRequestInputsCount   = "llm.request.inputs_count"
	AttrResponseID           = "llm.response.id"
	AttrResponsePartsCount   = "llm.response.parts_count"
	AttrResponseVectorsCount = "llm.response.vectors_count"

	AttrHTTPMethod           = "http.method"
	AttrHTTPStatusCode       = "http.status_code"
	AttrHTTPURL              = "http.url"
	AttrHTTPRequestBodySize  = "http.request.body.size"
	AttrHTTPResponseBodySize = "http.response.body.size"

	AttrErrorKind = "error.kind"

	AttrStatus            = "status"
	AttrStatusDescription = "status.description"
)
