// Package studio provides the core types for a generative media studio
// backed by the Google GenAI API.
//
// The studio supports three generation modes: chat (markdown-rendered text),
// still images, and video. Each mode maps to one provider operation:
//
//   - [ChatProvider]: Send a prompt (optionally with an attached image) and
//     receive a text response.
//   - [ImageProvider]: Generate a still image from a text prompt.
//   - [VideoProvider]: Start a long-running video generation job, poll it to
//     completion, and fetch the finished asset.
//
// Use the [github.com/spetersoncode/studio/client] package as the entry
// point for provider access. The [github.com/spetersoncode/studio/cmd/studio]
// command serves the browser front-end.
//
// # Basic Usage
//
// Generate an image:
//
//	c, err := client.New(ctx, client.Config{
//	    APIKey: os.Getenv("GEMINI_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.GenerateImage(ctx, "A lighthouse at dawn",
//	    studio.WithAspectRatio(studio.AspectRatio16x9),
//	)
//
// # Video Generation
//
// Video jobs are asynchronous. Submit the job, then drive it with a
// [Poller], which reports human-readable progress and honors context
// cancellation at every suspension point:
//
//	op, err := c.GenerateVideo(ctx, "A paper boat on a stream")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	poller := &studio.Poller{
//	    Videos:   c,
//	    OnStatus: func(msg string) { fmt.Println(msg) },
//	}
//	video, err := poller.Wait(ctx, op)
//
// # Error Handling
//
// All failures surface through a small categorized taxonomy (validation,
// blocked content, transport, internal) constructed once at the provider
// boundary, so callers never inspect provider-specific message text. See
// [Error] and [BlockedError].
package studio
