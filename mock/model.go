package mock_generator

type MockBlueprint struct {
	Delay             int                    `json:"delay"`
	TextModifications map[string]interface{} `json:"text_modifications"`
	ImagePrompts      map[string]string      `json:"image_prompts"`
}
