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

package app

// Alerter shows a message to the user
type Alerter interface {
	Alert(message string)
}

// alertQueue holds the alerts raised in a flow until the next view is
// rendered
type alertQueue struct {
	messages []string
}

func (q *alertQueue) Alert(message string) {
	q.messages = append(q.messages, message)
}

func (q *alertQueue) Drain() []string {
	messages := q.messages
	q.messages = nil
	if messages == nil {
		return []string{}
	}
	return messages
}
