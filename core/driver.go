package core

import (
	"context"
	"sync"
	"time"
)

// BootstrapAllModules drives every registered module through the lifecycle:
// dependency resolution, sequential init in resolved order, an optional
// warm-up delay, then the concurrent bootstrap and after-bootstrap phases.
//
// Any failure once the bootstrap phase has begun triggers a best-effort
// shutdown of all modules; the error returned is always the original
// failure, never one raised during that cleanup. Init failures propagate
// directly since no module has bootstrapped yet.
func (r *Registry) BootstrapAllModules(ctx context.Context) error {
	if len(r.modules) == 0 {
		return ErrNoModulesLoaded
	}

	order, err := resolveOrder(r.modules)
	if err != nil {
		return errModuleProblems(err)
	}

	for _, m := range order {
		opts, err := r.initOptionsFor(m)
		if err != nil {
			return err
		}
		r.logger.Info("initializing module", "module", m.Name())
		if err := m.Init(opts); err != nil {
			return err
		}
	}

	if r.bootstrapDelay > 0 {
		r.logger.Info("delaying bootstrap", "delay", r.bootstrapDelay)
		select {
		case <-time.After(r.bootstrapDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := r.runPhase(ctx, "bootstrap", order, Module.OnBootstrap); err != nil {
		return r.shutdownOnFailure(ctx, err)
	}
	if err := r.runPhase(ctx, "after-bootstrap", order, afterBootstrap); err != nil {
		return r.shutdownOnFailure(ctx, err)
	}
	return nil
}

// ShutdownAllModules invokes OnShutdown on every registered module
// concurrently and waits for all of them to settle. The first failure, if
// any, is returned after every shutdown attempt has completed.
func (r *Registry) ShutdownAllModules(ctx context.Context) error {
	return r.runPhase(ctx, "shutdown", r.modules, Module.OnShutdown)
}

// runPhase launches op for every module concurrently and joins at the phase
// barrier. All modules run to completion even when some fail; the first
// failure observed is returned.
func (r *Registry) runPhase(ctx context.Context, phase string, mods []Module, op func(Module, context.Context) error) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, m := range mods {
		wg.Add(1)
		go func(m Module) {
			defer wg.Done()
			if err := op(m, ctx); err != nil {
				r.logger.Error("module phase failed", "phase", phase, "module", m.Name(), "error", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(m)
	}
	wg.Wait()
	return firstErr
}

// afterBootstrap runs the optional post-bootstrap hook, a no-op for modules
// that do not implement it.
func afterBootstrap(m Module, ctx context.Context) error {
	if pb, ok := m.(PostBootstrapper); ok {
		return pb.AfterBootstrap(ctx)
	}
	return nil
}

// shutdownOnFailure tears the half-started system down and re-raises the
// captured cause. Shutdown failures are logged and discarded so the caller
// always sees the original fault.
func (r *Registry) shutdownOnFailure(ctx context.Context, cause error) error {
	r.logger.Error("bootstrap failed, shutting down", "error", cause)
	if err := r.ShutdownAllModules(ctx); err != nil {
		r.logger.Error("cleanup shutdown failed", "error", err)
	}
	return cause
}
