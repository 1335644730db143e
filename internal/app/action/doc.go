// Package action is the execution core shared by every forum action service.
//
// A service describes one invocation as an Op and hands it to a Pipeline:
//
//	res := pipeline.Execute(ctx, action.Op{
//	    Kind:    forum.KindCategory,
//	    Verb:    "archiving",
//	    Subject: category,
//	    Atomic:  true,
//	    Run: func(ctx context.Context) (any, error) {
//	        if err := action.Check(ctx, action.Deny(category.IsArchived(), "category.already.archived")); err != nil {
//	            return nil, err
//	        }
//	        return category, category.Archive(ctx)
//	    },
//	})
//
// The pipeline runs the Op's capability checks, dispatches the cancellable
// "category.archiving.before" hook, runs the closure (inside a unit of work
// when Atomic), dispatches "category.archiving.after" on success and
// returns a Result. Errors returned by the closure are classified:
//
//   - *BusinessError and *domain.ValidationError become field failures,
//   - *TypeMismatchError becomes an empty failure,
//   - anything else, panics included, is a fault: it is logged once at
//     ERROR on the "forum" channel and returned under KeyException.
package action
