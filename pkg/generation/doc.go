// Package generation produces social-media copy through an LLM provider.
//
// The package separates the text-completion transport from the product
// logic. Completer is the provider boundary; OpenAIClient implements it
// against the OpenAI chat completions API. Service validates requests,
// invokes the provider, and records each successful generation in a
// history store.
//
// Requests carry three enumerated dimensions besides the prompt: content
// type (post, description, hashtags, headline), tone (friendly, expert,
// sales), and length (short, medium, long). Length maps to the provider's
// max token budget; type and tone shape the system prompt.
//
// Example:
//
//	client := generation.NewOpenAIClient(generation.OpenAIConfig{APIKey: key})
//	svc := generation.NewService(client, generation.NewMemoryHistoryStore())
//
//	result, err := svc.Generate(ctx, "user-1", generation.Request{
//		Prompt: "new coffee blend launch",
//		Type:   generation.TypePost,
//		Tone:   generation.ToneFriendly,
//		Length: generation.LengthShort,
//	})
package generation
