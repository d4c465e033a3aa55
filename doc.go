package yml

// Package yml models the Yandex Market Language product feed: a typed
// entity graph (Feed, Shop, Currency, Category, Option and the Offer
// family) with bidirectional codecs between the objects, an ordered
// dict form and the feed XML dialect.
//
// Design policy:
// - Keep the public API in the root package; the element tree and the
//   open/close event source live under xmltree/, the CLI under cmd/ymlfeed.
// - Constructors validate eagerly and fail instead of returning a
//   half-valid entity; decoded input goes through the same constructors.
// - Decoding never catches or retries: the first invalid field or unknown
//   offer discriminant aborts the whole decode.
//
// Typical usage:
//
//	feed, err := yml.ParseFeed(r)
//	shop, err := yml.ParseShopStream(r)
//	err = feed.WriteXML(w)
