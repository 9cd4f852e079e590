package vision

import (
	"encoding/json"
	"fmt"

	"github.com/paradize/restodocs/internal/extract"
)

// systemPrompt instructs the model to behave as a document extractor and
// pins the output to the wire contract. The schema is embedded verbatim so
// the local validator and the model share one source of truth.
func systemPrompt() string {
	schema, _ := json.Marshal(extract.BuildExtractionJSONSchema())
	return fmt.Sprintf(`You are an accounting-document extraction engine for Russian supplier
documents (УПД, накладные, акты, кассовые чеки). You receive photographed
pages and return ONLY a JSON object matching this schema, no prose:

%s

Rules:
- Copy line-item names verbatim from the document, do not translate.
- "sum" is the VAT-inclusive line total column. "price" is the net unit
  price. Do not confuse the two columns.
- "vat_rate" is the rate as printed: "10%%", "20%%", "5%%" or "без НДС".
- "date" is YYYY-MM-DD. "inn" is digits only.
- "page_number"/"total_pages": read the page marker if printed ("стр. 1 из 2"),
  otherwise 1 of 1.
- "group_key": if supplier INN, document number and date are all readable,
  set "{inn}_{number}_{date}", otherwise null.
- Unreadable fields are null, never guessed.`, schema)
}

func userInstruction(hint extract.DocTypeHint) string {
	base := "Extract this document page."
	if hint != extract.HintNone {
		base += fmt.Sprintf(" The uploader says it is a %s.", string(hint))
	}
	return base
}
