// Package script provides the demo scripts: the built-in fixtures, a name registry and
// loaders for user-authored script files.
package script

import (
	"time"

	"github.com/waabox/clidemo/internal/domain"
)

// DefaultName is the script played when none is configured.
const DefaultName = "workflow"

const workflowTitle = "Development Workflow"

const featureV1 = `import React, { useState } from 'react';

const Feature = () => {
  const [data, setData] = useState(null);

  return (
    <div className="feature">
      <h2>New Feature</h2>
      <button onClick={() => setData('test')}>
        Click me
      </button>
    </div>
  );
};

export default Feature;`

const firstTestRun = `$ npm run test
  ✓ Component renders correctly
  ✓ Button click handler works
  ✓ State updates properly
  3 tests passing

$ npm run test:e2e
  ✓ Feature integration test
  ✓ User workflow test
  ✗ API integration test FAILED
  2 tests passing, 1 failed`

const failureDetail = `FAIL  src/__tests__/Feature.e2e.test.ts
  ● API integration test

    Expected: "success"
    Received: "error"

    at Object.<anonymous> (src/__tests__/Feature.e2e.test.ts:15:8)
    at processTicksAndRejections (node:internal/process/task_queues:95:5)

Test Suites: 1 failed, 2 passed`

const featureV2 = `import React, { useState } from 'react';

const Feature = () => {
  const [data, setData] = useState(null);
  const [loading, setLoading] = useState(false);

  const handleClick = async () => {
    setLoading(true);
    try {
      const response = await fetch('/api/data');
      const result = await response.json();
      setData(result.status);
    } catch (error) {
      setData('error');
    } finally {
      setLoading(false);
    }
  };

  return (
    <div className="feature">
      <h2>New Feature</h2>
      <button onClick={handleClick} disabled={loading}>
        {loading ? 'Loading...' : 'Click me'}
      </button>
    </div>
  );
};

export default Feature;`

const secondTestRun = `$ npm run test
  ✓ Component renders correctly
  ✓ Button click handler works
  ✓ State updates properly
  ✓ Loading state works
  4 tests passing

$ npm run test:e2e
  ✓ Feature integration test
  ✓ User workflow test
  ✓ API integration test
  3 tests passing

All tests passed! 🎉`

const buildAndDeploy = `$ npm run build
  ✓ Compiled 42 modules
  ✓ Bundle size: 182kB (gzip 61kB)

$ npm run deploy
  ✓ Uploading build artifacts...
  ✓ Deploying to production...
  ✓ Deployment successful!

Shipped with 94% test coverage 🚀`

const deployAndCoverage = `$ npm run deploy
  ✓ Building project...
  ✓ Deploying to production...
  ✓ Deployment successful!

$ npm run test:coverage
  ✓ All tests passing
  ✓ Coverage: 94.2%
  ✓ Lines: 94.2%
  ✓ Functions: 94.2%
  ✓ Branches: 94.2%
  ✓ Statements: 94.2%

Deployment successful with 94% coverage! 🚀`

// Workflow is the current demo: write code, watch a test fail, fix it, ship it.
// Autoplay stops on the last step.
func Workflow() domain.Script {
	return domain.Script{
		Name:        DefaultName,
		WindowTitle: workflowTitle,
		EndPolicy:   domain.EndStop,
		Steps: []domain.Step{
			{ID: 1, Title: "Write Code", Command: "vim src/components/Feature.tsx", Output: featureV1, Status: domain.StatusSuccess, Delay: 2000 * time.Millisecond},
			{ID: 2, Title: "Run Unit & Functional Tests", Command: "npm run test && npm run test:e2e", Output: firstTestRun, Status: domain.StatusError, Delay: 3000 * time.Millisecond},
			{ID: 3, Title: "1 Test Failed", Command: "npm run test:e2e -- --verbose", Output: failureDetail, Status: domain.StatusError, Delay: 2500 * time.Millisecond},
			{ID: 4, Title: "Write Some Other Code", Command: "vim src/components/Feature.tsx", Output: featureV2, Status: domain.StatusSuccess, Delay: 2000 * time.Millisecond},
			{ID: 5, Title: "Now All Tests Pass", Command: "npm run test && npm run test:e2e", Output: secondTestRun, Status: domain.StatusSuccess, Delay: 2000 * time.Millisecond},
			{ID: 6, Title: "Build & Deploy", Command: "npm run build && npm run deploy", Output: buildAndDeploy, Status: domain.StatusSuccess, Delay: 3000 * time.Millisecond},
		},
	}
}

// Classic is the first version of the demo: a fixed three second cadence that loops
// back to the start after a pause.
func Classic() domain.Script {
	const cadence = 3 * time.Second
	return domain.Script{
		Name:        "classic",
		WindowTitle: workflowTitle,
		EndPolicy:   domain.EndLoop,
		LoopPause:   3 * time.Second,
		Steps: []domain.Step{
			{ID: 1, Title: "Write Code", Command: "vim src/components/Feature.tsx", Output: featureV1, Status: domain.StatusSuccess, Delay: cadence},
			{ID: 2, Title: "Run Unit & Functional Tests", Command: "npm run test && npm run test:e2e", Output: firstTestRun, Status: domain.StatusError, Delay: cadence},
			{ID: 3, Title: "1 FT Failed", Command: "npm run test:e2e -- --verbose", Output: failureDetail, Status: domain.StatusError, Delay: cadence},
			{ID: 4, Title: "Write Some Other Code", Command: "vim src/components/Feature.tsx", Output: featureV2, Status: domain.StatusSuccess, Delay: cadence},
			{ID: 5, Title: "Now All Tests Pass", Command: "npm run test && npm run test:e2e", Output: secondTestRun, Status: domain.StatusSuccess, Delay: cadence},
			{ID: 6, Title: "Deploy & Check Coverage", Command: "npm run deploy && npm run test:coverage", Output: deployAndCoverage, Status: domain.StatusSuccess, Delay: cadence},
		},
	}
}

// Builtin returns a registry holding every built-in script.
func Builtin() *Registry {
	reg := NewRegistry()
	for _, s := range []domain.Script{Workflow(), Classic()} {
		if err := reg.Register(s); err != nil {
			panic(err) // fixtures are static; a failure here is a programming error
		}
	}
	return reg
}
