/*
Package session drives topic session state: opening a voting session,
closing it explicitly, and closing it lazily when its deadline passes.

Expiry is checked at the boundary of every operation that observes a topic
(lazy expiry) rather than by a timer, so a process with no sweeper still
satisfies the lifecycle invariant. The sweeper in main is a performance
optimization only.
*/
package session
