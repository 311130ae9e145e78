package session

import "context"

// optimistic runs one mutation under the optimistic-update protocol:
// apply the local change immediately, issue the remote call, revert the
// local change if the call fails, otherwise reconcile local state with the
// authoritative result. Every optimistic mutation in this package is an
// instance of this helper rather than a hand-written copy of the pattern.
//
// apply and revert must be exact inverses over the controller's state;
// reconcile may be nil when the remote result carries nothing to merge.
func optimistic[T any](
	ctx context.Context,
	apply func(),
	call func(ctx context.Context) (T, error),
	revert func(),
	reconcile func(result T),
) error {
	apply()

	result, err := call(ctx)
	if err != nil {
		revert()
		return err
	}

	if reconcile != nil {
		reconcile(result)
	}
	return nil
}
