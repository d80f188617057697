// Package synapseadmin provides a Go client SDK for the admin API of a
// Synapse Matrix homeserver.
//
// The client builds bearer-authenticated requests rooted at
// {baseURL}/_synapse/admin/, decodes JSON response bodies, and computes the
// HMAC credential required for shared-secret user registration.
//
// Basic usage:
//
//	client, err := synapseadmin.New("https://matrix.example.com",
//	    synapseadmin.WithAccessToken("syt_..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	user, err := client.QueryUser(ctx, "@admin:example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Registering a user requires the homeserver's registration shared secret
// rather than an access token:
//
//	user, err := client.RegisterUser(ctx, secret, "bob", "password",
//	    synapseadmin.WithAdmin())
//
// # Error Handling
//
// Responses with a status code in [300, 500) are returned as *[APIError];
// transport failures as *[NetworkError]; undecodable response bodies as
// *[ParseError]. Responses below 300 or at 500 and above are NOT treated
// as errors — 5xx responses pass through as ordinary results, matching the
// established contract of these endpoints. Callers wanting stricter 5xx
// handling must inspect the status themselves, for example via [Client.Do].
package synapseadmin
