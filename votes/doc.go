/*
Package votes implements the vote ledger.

Cast is the only write. It is a single guarded INSERT: the statement checks
the owning topic is OPEN and relies on the UNIQUE (topic_id, voter_id) key
for deduplication, so the check and the insert cannot interleave with a
concurrent cast. Votes are immutable once stored and are never deleted.

Count is a pure read over the topic's votes, recomputed per call.
*/
package votes
