// Package readme implements best-effort readme retrieval for public
// GitHub repositories.
//
// There is no API call involved: candidate locations on the raw-content
// host are probed directly, following the stable path convention
// {base}/{owner}/{name}/refs/heads/{branch}/{filename}. Branch and
// filename priorities are ordered sequences consumed by nested
// iteration with early exit on the first 200 response; priority order
// is an observable contract, so the cascade never uses unordered sets.
package readme
