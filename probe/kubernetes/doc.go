/*
Package kubernetes implements the platform probe for Kubernetes pods.

This probe differs slightly from the usual in that it combines multiple
independent signals: the kubelet-injected API service environment variable,
the automounted service account, and finally the cluster-internal DNS name
of the API service. The latter is the only signal involving the network, so
it comes last and under a tight deadline.
*/
package kubernetes
