// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package http

import (
	"net/http"
)

func allowAllOrigins(r *http.Request) bool { return true }

// SetAcceptedOrigins sets the origins accepted by the event stream
// websocket. Requests without an Origin header are always accepted.
func SetAcceptedOrigins(origins []string) {
	if len(origins) == 0 {
		wsUpgrader.CheckOrigin = allowAllOrigins
		return
	}
	originSet := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		originSet[origin] = struct{}{}
	}
	wsUpgrader.CheckOrigin = func(r *http.Request) bool {
		actual, ok := r.Header[HdrKeyOrigin]
		if !ok {
			return true
		} else if len(actual) == 0 {
			return false
		}
		_, allowed := originSet[actual[0]]
		return allowed
	}
}
