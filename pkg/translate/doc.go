// Package translate provides a uniform abstraction over interchangeable
// translation backends: a deterministic offline backend and networked
// backends speaking either a chat-completion wire format or a dedicated
// machine-translation endpoint.
//
// Every backend implements the Provider interface and returns a Result
// carrying the translated text, the backend's confidence score, and the
// backend's identity. The Service wraps the configured backend and enforces
// the package's failure contract:
//
//   - Same-locale requests short-circuit with confidence 1.0 and no I/O.
//   - A missing credential for a networked backend is a configuration error,
//     returned before any request is attempted.
//   - Every other backend failure (transport error, non-2xx status, malformed
//     payload) is absorbed: the Service deliberately substitutes the offline
//     backend's result for the same input, so callers only ever observe a
//     lower-confidence result tagged with the offline provider's name.
//
// # Usage
//
//	svc, err := translate.New(translate.Config{Backend: translate.BackendOffline})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res, err := svc.Translate(ctx, translate.Request{
//		Text: "Home",
//		From: locale.English,
//		To:   locale.Swedish,
//	})
//	// res.TranslatedText == "Hem", res.Confidence == 0.95
//
// Backend selection and credential are runtime-settable via Configure;
// switching does not affect calls already dispatched.
//
// Configuration can also be loaded from the environment (and an optional
// .env file) with LoadConfig.
package translate
