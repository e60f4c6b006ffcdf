package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	entq "github.com/docdot/docdot/ent/question"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON Schema a question bank file must satisfy.
const bankSchema = `{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "question", "answer", "category"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"question": {"type": "string", "minLength": 1},
					"answer": {"type": "boolean"},
					"explanation": {"type": "string"},
					"ai_explanation": {"type": "string"},
					"references": {
						"type": "object",
						"additionalProperties": {"type": "string"}
					},
					"category": {"type": "string", "minLength": 1},
					"subcategory": {"type": "string"}
				}
			}
		}
	}
}`

var (
	compiledBankSchema *jsonschema.Schema
	compileBankOnce    sync.Once
	compileBankErr     error
)

// bankEntry mirrors one question object in a bank file.
type bankEntry struct {
	ID            string            `json:"id"`
	Question      string            `json:"question"`
	Answer        bool              `json:"answer"`
	Explanation   string            `json:"explanation"`
	AIExplanation string            `json:"ai_explanation"`
	References    map[string]string `json:"references"`
	Category      string            `json:"category"`
	Subcategory   string            `json:"subcategory"`
}

type bankFile struct {
	Questions []bankEntry `json:"questions"`
}

// ImportBank validates a question bank file against the bank schema and
// upserts its questions. Returns how many questions were written.
func (r *QuestionRepo) ImportBank(ctx context.Context, src io.Reader) (int, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return 0, fmt.Errorf("read bank: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return 0, fmt.Errorf("parse bank: %w", err)
	}

	schema, err := getBankSchema()
	if err != nil {
		return 0, err
	}
	if err := schema.Validate(parsed); err != nil {
		return 0, fmt.Errorf("validate bank: %w", err)
	}

	var bank bankFile
	if err := json.Unmarshal(raw, &bank); err != nil {
		return 0, fmt.Errorf("decode bank: %w", err)
	}

	for _, entry := range bank.Questions {
		if err := r.upsert(ctx, entry); err != nil {
			return 0, err
		}
	}
	return len(bank.Questions), nil
}

func (r *QuestionRepo) upsert(ctx context.Context, entry bankEntry) error {
	existing, err := r.GetByID(ctx, entry.ID)
	if err != nil {
		return err
	}

	if existing == nil {
		_, err = r.client.Question.Create().
			SetQid(entry.ID).
			SetText(entry.Question).
			SetAnswer(entry.Answer).
			SetExplanation(entry.Explanation).
			SetAiExplanation(entry.AIExplanation).
			SetReferences(entry.References).
			SetCategory(entry.Category).
			SetSubcategory(entry.Subcategory).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("import question %s: %w", entry.ID, err)
		}
		return nil
	}

	err = r.client.Question.Update().
		Where(entq.Qid(entry.ID)).
		SetText(entry.Question).
		SetAnswer(entry.Answer).
		SetExplanation(entry.Explanation).
		SetAiExplanation(entry.AIExplanation).
		SetReferences(entry.References).
		SetCategory(entry.Category).
		SetSubcategory(entry.Subcategory).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update question %s: %w", entry.ID, err)
	}
	return nil
}

func getBankSchema() (*jsonschema.Schema, error) {
	compileBankOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(bankSchema), &doc); err != nil {
			compileBankErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question-bank.json", doc); err != nil {
			compileBankErr = fmt.Errorf("add bank schema: %w", err)
			return
		}
		compiledBankSchema, compileBankErr = c.Compile("schema://question-bank.json")
	})
	return compiledBankSchema, compileBankErr
}
